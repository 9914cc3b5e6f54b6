package gofocus

// resolveOverflow trims a stack that grew past limit. All excess pieces come off
// the bottom in one go. The color that was on the very bottom is returned with
// the number of pieces removed; removed is zero when the stack fits.
func resolveOverflow(s Stack, limit int) (rest Stack, bottom Color, removed int) {
	excess := len(s) - limit
	if excess <= 0 {
		return s, "", 0
	}

	bottom = s[0]
	rest = append(Stack(nil), s[excess:]...)
	return rest, bottom, excess
}

// overflow is what happened to a stack after a placement.
type overflow struct {
	Bottom  Color
	Removed int
}

// settle runs the height limit on the stack at p after pieces were placed on
// it and credits the mover with exactly one reserve or capture, no matter how
// many pieces came off.
func (g *Game) settle(p Position, mover *Player) *overflow {
	rest, bottom, removed := resolveOverflow(g.board.At(p), g.config.MaxStackHeight)
	if removed == 0 {
		return nil
	}

	g.board.set(p, rest)
	if bottom == mover.Color {
		mover.Reserve++
	} else {
		mover.Captured++
	}
	g.discarded += removed - 1

	return &overflow{Bottom: bottom, Removed: removed}
}
