package gofocus

// checkMove runs the legality checks for a move in order. The first check
// that fails decides the error. The only state it touches is the turn owner,
// which the first caller of the game claims even if the move is then refused.
func (g *Game) checkMove(name string, from, to Position, count int) (*Player, error) {
	p, err := g.actor(name)
	if err != nil {
		return nil, err
	}

	g.turns.claim(name)

	if !g.turns.isOwner(name) {
		return nil, ErrNotYourTurn
	}

	// The player must control the stack they move.
	src := g.board.At(from)
	top, ok := src.Top()
	if !ok || top != p.Color {
		return nil, ErrInvalidLocation
	}

	if !g.board.InBounds(to) {
		return nil, ErrInvalidLocation
	}

	if !InRange(from, to, src.Height()) {
		return nil, ErrInvalidLocation
	}

	if count < 1 || count > src.Height() {
		return nil, ErrInvalidNumberOfPieces
	}

	return p, nil
}

// checkReserve runs the legality checks for placing a piece from reserve.
// Reserve placements never claim an unowned turn.
func (g *Game) checkReserve(name string, pos Position) (*Player, error) {
	p, err := g.actor(name)
	if err != nil {
		return nil, err
	}

	if !g.turns.isOwner(name) {
		return nil, ErrNotYourTurn
	}

	if p.Reserve <= 0 {
		return nil, ErrNoPiecesInReserve
	}

	if !g.board.InBounds(pos) {
		return nil, ErrInvalidLocation
	}

	return p, nil
}

// actor looks up the player taking an action in a game that is still going.
func (g *Game) actor(name string) (*Player, error) {
	if g.winner != "" {
		return nil, ErrGameOver
	}

	p, ok := g.players[name]
	if !ok {
		return nil, ErrUnknownPlayer
	}

	return p, nil
}
