package gofocus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsCountActions(t *testing.T) {
	R, G := ColorRed, ColorGreen

	m, err := NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	game := newTestGame(t, WithMetrics(m), WithWinningCaptures(1))

	_, err = game.Move("ralph", Pos(0, 0), Pos(0, 1), 1)
	require.NoError(t, err)
	_, err = game.Move("ralph", Pos(0, 1), Pos(0, 2), 1)
	require.ErrorIs(t, err, ErrNotYourTurn)
	_, err = game.ReservedMove("george", Pos(0, 2))
	require.ErrorIs(t, err, ErrNoPiecesInReserve)

	game.board.set(Pos(2, 2), Stack{R, R, R, R, R})
	res, err := game.Move("george", Pos(2, 3), Pos(2, 2), 1)
	require.NoError(t, err)
	require.True(t, res.Won())

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Actions.WithLabelValues("move", "ok"))+testutil.ToFloat64(m.Actions.WithLabelValues("move", "win")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Actions.WithLabelValues("move", "win")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Actions.WithLabelValues("move", "invalid_player_turn")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Actions.WithLabelValues("reserve", "no_pieces_in_reserve")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Overflows.WithLabelValues("capture")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Overflows.WithLabelValues("reserve")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Wins))

	assert.Equal(t, Stack{R, R, R, R, G}, mustPieces(t, game, Pos(2, 2)))
}

func TestMetricsRegisterOnce(t *testing.T) {
	reg := prometheus.NewRegistry()

	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	assert.Error(t, err)

	m, err := NewMetrics(nil)
	require.NoError(t, err)
	assert.NotNil(t, m.Actions)
}

func TestNilMetricsAreIgnored(t *testing.T) {
	var m *Metrics
	m.action("move", nil, true)
	m.overflow("reserve")
}
