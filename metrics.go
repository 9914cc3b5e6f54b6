package gofocus

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts what happens across every game that is created with it.
type Metrics struct {
	Actions   *prometheus.CounterVec
	Overflows *prometheus.CounterVec
	Wins      prometheus.Counter
}

// NewMetrics creates the counters and registers them with reg. A nil reg
// leaves them unregistered, which is handy in tests.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Service,
			Name:      "actions_total",
			Help:      "Moves and reserve placements by outcome.",
		}, []string{"action", "outcome"}),
		Overflows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Service,
			Name:      "overflows_total",
			Help:      "Stacks trimmed back to the height limit, by what the mover was credited.",
		}, []string{"credit"}),
		Wins: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Service,
			Name:      "wins_total",
			Help:      "Games won.",
		}),
	}

	if reg == nil {
		return m, nil
	}

	for _, c := range []prometheus.Collector{m.Actions, m.Overflows, m.Wins} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) action(action string, err error, won bool) {
	if m == nil {
		return
	}

	outcome := "ok"
	switch {
	case err != nil:
		outcome = "rejected"
		var k ErrorKind
		if errors.As(err, &k) {
			outcome = k.Code()
		}
	case won:
		outcome = "win"
		m.Wins.Inc()
	}

	m.Actions.WithLabelValues(action, outcome).Inc()
}

func (m *Metrics) overflow(credit string) {
	if m == nil {
		return
	}
	m.Overflows.WithLabelValues(credit).Inc()
}
