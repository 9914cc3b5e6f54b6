package gofocus

// MoveSuccess is the message of an accepted action that did not win the game.
const MoveSuccess = "successfully moved"

// Result is the outcome of an accepted move or reserve placement.
type Result struct {
	// Winner is the name of the player whose action won the game, or empty.
	Winner string
}

// Won reports whether the action won the game.
func (r *Result) Won() bool {
	return r.Winner != ""
}

func (r *Result) String() string {
	if r.Won() {
		return r.Winner + " Wins"
	}
	return MoveSuccess
}
