package gofocus

import (
	"fmt"

	"go.uber.org/zap"
)

// Game is the state of a single game of Focus. A Game is not safe for
// concurrent use; see Tables for sharing games between goroutines.
type Game struct {
	config  Config
	board   *Board
	players map[string]*Player
	order   [2]string
	turns   *turns

	winner    string
	discarded int
	initial   int
	history   []*Record

	log     *zap.SugaredLogger
	metrics *Metrics
}

// NewGame sets up the board and registers both players. Players need distinct
// names and distinct colors.
func NewGame(p1, p2 PlayerInfo, opts ...Option) (*Game, error) {
	cfg := DefaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	for _, p := range []PlayerInfo{p1, p2} {
		if p.Name == "" {
			return nil, fmt.Errorf("player name cannot be empty")
		}
		if _, err := ParseColor(string(p.Color)); err != nil {
			return nil, fmt.Errorf("player %s: %w", p.Name, err)
		}
	}

	if p1.Name == p2.Name {
		return nil, fmt.Errorf("players must have different names, both are %q", p1.Name)
	}

	c1, _ := ParseColor(string(p1.Color))
	c2, _ := ParseColor(string(p2.Color))
	if c1 == c2 {
		return nil, fmt.Errorf("players must have different colors, both are %s", c1)
	}

	b := &Board{Size: cfg.BoardSize, Pattern: cfg.Pattern}
	if err := b.Init(); err != nil {
		return nil, err
	}

	g := &Game{
		config: cfg,
		board:  b,
		players: map[string]*Player{
			p1.Name: {Name: p1.Name, Color: c1},
			p2.Name: {Name: p2.Name, Color: c2},
		},
		order:   [2]string{p1.Name, p2.Name},
		turns:   newTurns(p1.Name, p2.Name),
		initial: b.PieceCount(),
		log:     cfg.logger,
		metrics: cfg.metrics,
	}
	if g.log == nil {
		g.log = nopLogger()
	}

	return g, nil
}

// Config returns the rule settings of the game.
func (g *Game) Config() Config {
	return g.config
}

// Board returns a copy of the current board.
func (g *Game) Board() *Board {
	return g.board.Clone()
}

// Players returns both players in registration order.
func (g *Game) Players() []Player {
	return []Player{*g.players[g.order[0]], *g.players[g.order[1]]}
}

// ShowPieces returns the stack at pos, bottom piece first.
func (g *Game) ShowPieces(pos Position) (Stack, error) {
	if !g.board.InBounds(pos) {
		return nil, ErrInvalidLocation
	}
	return append(Stack{}, g.board.At(pos)...), nil
}

// ShowReserve returns how many pieces the player holds in reserve.
func (g *Game) ShowReserve(name string) (int, error) {
	p, ok := g.players[name]
	if !ok {
		return 0, ErrUnknownPlayer
	}
	return p.Reserve, nil
}

// ShowCaptured returns how many opponent pieces the player has captured.
func (g *Game) ShowCaptured(name string) (int, error) {
	p, ok := g.players[name]
	if !ok {
		return 0, ErrUnknownPlayer
	}
	return p.Captured, nil
}

// Turn returns the name of the player to act, or empty before the first move.
func (g *Game) Turn() string {
	return g.turns.owner()
}

// Winner returns the name of the winning player, or empty.
func (g *Game) Winner() string {
	return g.winner
}

// GameOver reports whether somebody has won, and who.
func (g *Game) GameOver() (string, bool) {
	return g.winner, g.winner != ""
}

// History returns every accepted action in order.
func (g *Game) History() []*Record {
	return append([]*Record(nil), g.history...)
}

// PieceCount sums the pieces on the board, in reserves, in captures, and
// those dropped off the board beyond the one piece each overflow credits.
// It always equals the count the game started with.
func (g *Game) PieceCount() int {
	n := g.board.PieceCount() + g.discarded
	for _, p := range g.players {
		n += p.Reserve + p.Captured
	}
	return n
}

// InitialPieceCount is the number of pieces on the starting board.
func (g *Game) InitialPieceCount() int {
	return g.initial
}

// Move takes the top count pieces of the stack at from and puts them on top of
// the stack at to.
func (g *Game) Move(name string, from, to Position, count int) (*Result, error) {
	p, err := g.checkMove(name, from, to, count)
	if err != nil {
		g.reject("move", name, err)
		return nil, err
	}

	g.board.put(to, g.board.take(from, count))

	rec := &Record{Player: name, From: from, To: to, Count: count}
	return g.finish("move", p, to, rec), nil
}

// ReservedMove places one of the player's reserve pieces on pos.
func (g *Game) ReservedMove(name string, pos Position) (*Result, error) {
	p, err := g.checkReserve(name, pos)
	if err != nil {
		g.reject("reserve", name, err)
		return nil, err
	}

	g.board.put(pos, Stack{p.Color})
	p.Reserve--

	rec := &Record{Player: name, Reserve: true, To: pos, Count: 1}
	return g.finish("reserve", p, pos, rec), nil
}

// finish applies the height limit at the landing square, passes the turn and
// checks whether the acting player has won. The acting player is p, not
// whoever holds the turn afterwards.
func (g *Game) finish(action string, p *Player, landing Position, rec *Record) *Result {
	if of := g.settle(landing, p); of != nil {
		credit := "capture"
		if of.Bottom == p.Color {
			credit = "reserve"
		}
		g.metrics.overflow(credit)
		g.log.Infow("stack overflow", "player", p.Name, "position", landing.String(), "bottom", of.Bottom.String(), "removed", of.Removed, "credit", credit)
	}

	g.turns.advance()

	res := &Result{}
	if p.Captured >= g.config.WinningCaptures {
		g.winner = p.Name
		res.Winner = p.Name
	}

	rec.Number = int64(len(g.history) + 1)
	rec.Result = res.String()
	g.history = append(g.history, rec)

	g.metrics.action(action, nil, res.Won())
	g.log.Debugw("action accepted", "action", action, "player", p.Name, "record", rec.Text(), "result", res.String())

	return res
}

func (g *Game) reject(action, name string, err error) {
	g.metrics.action(action, err, false)
	g.log.Debugw("action rejected", "action", action, "player", name, zap.Error(err))
}
