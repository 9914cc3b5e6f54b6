package gofocus

import (
	"fmt"
	"regexp"
	"strconv"
)

// Position is a square on the board, always given as (row, column). No entry
// point transposes the pair.
type Position struct {
	Row int
	Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// (row),(col) with optional parens and spaces
var positionRegex = regexp.MustCompile(`^\(?\s*(-?\d+)\s*,\s*(-?\d+)\s*\)?$`)

// ParsePosition reads a position written as "(row,col)" or "row,col".
func ParsePosition(s string) (Position, error) {
	parts := positionRegex.FindStringSubmatch(s)
	if parts == nil {
		return Position{}, fmt.Errorf("invalid position: %q", s)
	}

	row, err := strconv.Atoi(parts[1])
	if err != nil {
		return Position{}, err
	}
	col, err := strconv.Atoi(parts[2])
	if err != nil {
		return Position{}, err
	}

	return Position{Row: row, Col: col}, nil
}

// Distance is the Manhattan distance between two squares.
func Distance(a, b Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// InRange reports whether a stack of the given height at from can reach to.
// Only the total distance counts; the path does not have to be a straight
// line.
func InRange(from, to Position, height int) bool {
	d := Distance(from, to)
	return d >= 1 && d <= height
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
