package gofocus

import (
	"fmt"
	"strings"
)

// Stack is a pile of pieces on one square. Index 0 is the bottom piece and the
// last index is the top piece. An empty stack means the square is empty.
type Stack []Color

// Height is the number of pieces in the stack.
func (s Stack) Height() int {
	return len(s)
}

// Top returns the top piece and false if the stack is empty.
func (s Stack) Top() (Color, bool) {
	if len(s) == 0 {
		return "", false
	}
	return s[len(s)-1], true
}

// Bottom returns the bottom piece and false if the stack is empty.
func (s Stack) Bottom() (Color, bool) {
	if len(s) == 0 {
		return "", false
	}
	return s[0], true
}

func (s Stack) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Board is a square grid of stacks. Squares is indexed [row][column].
type Board struct {
	Size    int
	Pattern int
	Squares [][]Stack
}

// Init creates the starting layout: every square holds a single piece, rows
// alternate colors every Pattern squares, and each row starts with the color
// the previous row did not start with.
func (b *Board) Init() error {
	if b.Size < 1 {
		return fmt.Errorf("%d is not a valid board size", b.Size)
	}

	if b.Pattern < 1 {
		return fmt.Errorf("%d is not a valid layout pattern", b.Pattern)
	}

	b.Squares = layout(b.Size, b.Pattern)

	return nil
}

// InBounds reports whether p is a square on the board.
func (b *Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.Size && p.Col >= 0 && p.Col < b.Size
}

// At returns the stack at p. Positions off the board return an empty stack.
func (b *Board) At(p Position) Stack {
	if !b.InBounds(p) {
		return nil
	}
	return b.Squares[p.Row][p.Col]
}

func (b *Board) set(p Position, s Stack) {
	b.Squares[p.Row][p.Col] = s
}

// take removes the top count pieces from the stack at p and returns them in
// bottom to top order.
func (b *Board) take(p Position, count int) Stack {
	s := b.At(p)
	split := len(s) - count
	moved := append(Stack(nil), s[split:]...)
	b.set(p, s[:split:split])
	return moved
}

// put places pieces on top of the stack at p, keeping their order.
func (b *Board) put(p Position, pieces Stack) {
	s := b.At(p)
	grown := make(Stack, 0, len(s)+len(pieces))
	grown = append(grown, s...)
	grown = append(grown, pieces...)
	b.set(p, grown)
}

// PieceCount is the number of pieces on the board.
func (b *Board) PieceCount() int {
	n := 0
	for _, row := range b.Squares {
		for _, s := range row {
			n += len(s)
		}
	}
	return n
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{Size: b.Size, Pattern: b.Pattern, Squares: make([][]Stack, len(b.Squares))}
	for r, row := range b.Squares {
		c.Squares[r] = make([]Stack, len(row))
		for col, s := range row {
			c.Squares[r][col] = append(Stack{}, s...)
		}
	}
	return c
}

// String prints one row per line with every stack listed bottom to top.
func (b *Board) String() string {
	var sb strings.Builder
	for _, row := range b.Squares {
		cells := make([]string, len(row))
		for i, s := range row {
			cells[i] = s.String()
		}
		sb.WriteString(strings.Join(cells, " "))
		sb.WriteString("\n")
	}
	return sb.String()
}
