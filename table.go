package gofocus

import (
	"errors"
	"sort"
	"sync"

	"github.com/ifo/sanic"
	"go.uber.org/zap"
)

// ErrTableNotFound is returned when no open table has the requested slug.
var ErrTableNotFound = errors.New("table not found")

// Table is a game that can be shared between goroutines. Every call holds the
// table lock for the whole read, validate, and write sequence of an action.
type Table struct {
	Slug string

	mu   sync.Mutex
	game *Game
}

// Move plays a move on the table's game.
func (t *Table) Move(name string, from, to Position, count int) (*Result, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.game.Move(name, from, to, count)
}

// ReservedMove plays a reserve placement on the table's game.
func (t *Table) ReservedMove(name string, pos Position) (*Result, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.game.ReservedMove(name, pos)
}

// View runs fn with the game locked. fn must not keep the game after it
// returns.
func (t *Table) View(fn func(g *Game) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(t.game)
}

// Tables keeps the open games of a process, each under its own slug.
type Tables struct {
	mu     sync.RWMutex
	tables map[string]*Table
	worker *sanic.Worker
	opts   []Option
	log    *zap.SugaredLogger
}

// NewTables creates an empty registry. The options are applied to every game
// it opens, before the options given to Open.
func NewTables(log *zap.SugaredLogger, opts ...Option) *Tables {
	if log == nil {
		log = nopLogger()
	}

	return &Tables{
		tables: map[string]*Table{},
		worker: sanic.NewWorker7(),
		opts:   opts,
		log:    log,
	}
}

// Open starts a new game and returns its table.
func (ts *Tables) Open(p1, p2 PlayerInfo, opts ...Option) (*Table, error) {
	all := append([]Option{WithLogger(ts.log)}, ts.opts...)
	all = append(all, opts...)

	g, err := NewGame(p1, p2, all...)
	if err != nil {
		return nil, err
	}

	id := ts.worker.NextID()
	t := &Table{Slug: ts.worker.IDString(id), game: g}

	ts.mu.Lock()
	ts.tables[t.Slug] = t
	ts.mu.Unlock()

	ts.log.Infow("table opened", "slug", t.Slug, "player1", p1.Name, "player2", p2.Name)

	return t, nil
}

// Get returns the table with the given slug.
func (ts *Tables) Get(slug string) (*Table, error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	t, ok := ts.tables[slug]
	if !ok {
		return nil, ErrTableNotFound
	}
	return t, nil
}

// Close forgets a table.
func (ts *Tables) Close(slug string) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, ok := ts.tables[slug]; !ok {
		return ErrTableNotFound
	}
	delete(ts.tables, slug)

	ts.log.Infow("table closed", "slug", slug)

	return nil
}

// List returns the slugs of all open tables, sorted.
func (ts *Tables) List() []string {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	slugs := make([]string, 0, len(ts.tables))
	for s := range ts.tables {
		slugs = append(slugs, s)
	}
	sort.Strings(slugs)
	return slugs
}
