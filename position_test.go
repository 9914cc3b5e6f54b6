package gofocus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePosition(t *testing.T) {
	tests := map[string]Position{
		"(0,0)":     Pos(0, 0),
		"(5, 3)":    Pos(5, 3),
		"2,1":       Pos(2, 1),
		"( 1 , 4 )": Pos(1, 4),
		"(-1,0)":    Pos(-1, 0),
	}

	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			got, err := ParsePosition(in)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	for _, bad := range []string{"", "a1", "(1)", "1,2,3", "(x,y)"} {
		t.Run("bad "+bad, func(t *testing.T) {
			_, err := ParsePosition(bad)
			assert.Error(t, err)
		})
	}
}

func TestPositionString(t *testing.T) {
	assert.Equal(t, "(2,5)", Pos(2, 5).String())

	p, err := ParsePosition(Pos(4, 1).String())
	require.NoError(t, err)
	assert.Equal(t, Pos(4, 1), p)
}

func TestInBounds(t *testing.T) {
	board := &Board{Size: 6, Pattern: 2}
	require.NoError(t, board.Init())

	tests := []struct {
		pos  Position
		want bool
	}{
		{Pos(0, 0), true},
		{Pos(5, 5), true},
		{Pos(0, 5), true},
		{Pos(6, 0), false},
		{Pos(0, 6), false},
		{Pos(-1, 0), false},
		{Pos(0, -1), false},
	}

	for _, tt := range tests {
		t.Run(tt.pos.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, board.InBounds(tt.pos))
		})
	}

	assert.Nil(t, board.At(Pos(9, 9)))
}

func TestInRange(t *testing.T) {
	tests := []struct {
		name     string
		from, to Position
		height   int
		want     bool
	}{
		{"same square", Pos(2, 2), Pos(2, 2), 3, false},
		{"one step", Pos(2, 2), Pos(2, 3), 1, true},
		{"too far", Pos(2, 2), Pos(2, 4), 1, false},
		{"straight at limit", Pos(0, 0), Pos(3, 0), 3, true},
		{"bent path", Pos(1, 0), Pos(2, 1), 2, true},
		{"bent path too far", Pos(1, 0), Pos(3, 2), 3, false},
		{"backwards", Pos(4, 4), Pos(2, 4), 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InRange(tt.from, tt.to, tt.height))
		})
	}

	assert.Equal(t, 7, Distance(Pos(0, 0), Pos(3, 4)))
	assert.Equal(t, 7, Distance(Pos(3, 4), Pos(0, 0)))
}
