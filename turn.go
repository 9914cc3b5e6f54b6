package gofocus

// turns tracks whose turn it is. Nobody owns the turn until the first move is
// attempted; from then on ownership alternates between the two registered
// players after every accepted action.
type turns struct {
	order   [2]string
	current string
}

func newTurns(first, second string) *turns {
	return &turns{order: [2]string{first, second}}
}

// claim hands an unowned turn to name. It is a no-op once a turn owner exists.
func (t *turns) claim(name string) {
	if t.current == "" {
		t.current = name
	}
}

func (t *turns) owner() string {
	return t.current
}

func (t *turns) isOwner(name string) bool {
	return t.current != "" && t.current == name
}

// advance passes the turn to the other player.
func (t *turns) advance() {
	if t.current == t.order[0] {
		t.current = t.order[1]
		return
	}
	t.current = t.order[0]
}
