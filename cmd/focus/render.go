package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/icco/gofocus"
)

var (
	boardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Align(lipgloss.Center)

	pieceStyles = map[gofocus.Color]lipgloss.Style{
		gofocus.ColorRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		gofocus.ColorGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
	}

	topStyle = lipgloss.NewStyle().Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

// renderBoard draws every stack bottom to top, with the controlling piece in
// bold. Empty squares are shown as a dot.
func renderBoard(b *gofocus.Board, height int) string {
	width := max(height, 1) + 2
	rows := make([]string, 0, len(b.Squares))
	for _, row := range b.Squares {
		cells := make([]string, 0, len(row))
		for _, s := range row {
			cells = append(cells, cellStyle.Width(width).Render(renderStack(s)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func renderStack(s gofocus.Stack) string {
	if len(s) == 0 {
		return "."
	}

	var sb strings.Builder
	for i, c := range s {
		st := pieceStyles[c]
		if i == len(s)-1 {
			st = st.Inherit(topStyle)
		}
		sb.WriteString(st.Render(c.String()))
	}
	return sb.String()
}

// replay plays the script on g and writes one line per action.
func replay(w io.Writer, s *gofocus.Script, g *gofocus.Game, showBoard bool) error {
	height := g.Config().MaxStackHeight

	if showBoard {
		if _, err := fmt.Fprintln(w, renderBoard(g.Board(), height)); err != nil {
			return err
		}
	}

	for _, o := range s.Play(g) {
		msg := o.String()
		if o.Err != nil {
			msg = errorStyle.Render(msg)
		}
		if _, err := fmt.Fprintf(w, "%s -> %s\n", o.Record.Text(), msg); err != nil {
			return err
		}

		if showBoard && o.Err == nil {
			if _, err := fmt.Fprintln(w, renderBoard(g.Board(), height)); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprint(w, summary(g))
	return err
}
