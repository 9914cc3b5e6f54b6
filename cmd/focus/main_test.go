package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/icco/gofocus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplay(t *testing.T) {
	file, err := os.ReadFile("../../testdata/opening.focus")
	require.NoError(t, err)

	s, err := gofocus.ParseScript(file)
	require.NoError(t, err)

	g, err := s.NewGame()
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, replay(&out, s, g, true))

	text := out.String()
	assert.Contains(t, text, "1. ralph (0,0) (1,0) 1 { ralph opens } -> successfully moved")
	assert.Contains(t, text, "not your turn")
	assert.Contains(t, text, "no pieces in reserve")
	assert.Contains(t, text, "george(G) reserve:0 captured:0")
	assert.NotContains(t, text, "winner:")
}

func TestRenderStack(t *testing.T) {
	assert.Equal(t, ".", renderStack(nil))

	got := renderStack(gofocus.Stack{gofocus.ColorGreen, gofocus.ColorRed})
	assert.Contains(t, got, "G")
	assert.Contains(t, got, "R")
	assert.Less(t, strings.Index(got, "G"), strings.Index(got, "R"))
}

func TestRenderBoard(t *testing.T) {
	b := &gofocus.Board{Size: 2, Pattern: 1}
	require.NoError(t, b.Init())

	got := renderBoard(b, 5)
	lines := strings.Split(got, "\n")
	// two rows plus the top and bottom border
	assert.Len(t, lines, 4)
}

func TestGameOptions(t *testing.T) {
	opts.Size = 4
	opts.Captures = 2
	defer func() {
		opts.Size = 0
		opts.Captures = 0
	}()

	g, err := gofocus.NewGame(
		gofocus.PlayerInfo{Name: "a", Color: gofocus.ColorRed},
		gofocus.PlayerInfo{Name: "b", Color: gofocus.ColorGreen},
		gameOptions()...,
	)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Config().BoardSize)
	assert.Equal(t, 2, g.Config().WinningCaptures)
	assert.Equal(t, gofocus.DefaultPattern, g.Config().Pattern)
}
