package gofocus

import "fmt"

// PlayerInfo is what a game is created with for each player.
type PlayerInfo struct {
	Name  string
	Color Color
}

// Player is a participant and their off board piles.
type Player struct {
	Name  string
	Color Color

	// Reserve counts own pieces removed by overflow, available to place again.
	Reserve int
	// Captured counts opponent pieces removed by overflow.
	Captured int
}

func (p *Player) String() string {
	return fmt.Sprintf("%s(%s) reserve:%d captured:%d", p.Name, p.Color, p.Reserve, p.Captured)
}
