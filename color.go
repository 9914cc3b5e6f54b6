package gofocus

import (
	"fmt"
	"strings"
)

// Color is the color of a single Focus piece.
type Color string

// ColorRed is a constant for the red pieces. Red starts the first row.
const ColorRed Color = "R"

// ColorGreen is a constant for the green pieces.
const ColorGreen Color = "G"

// ParseColor accepts the single letter abbreviations used in game notation
// ("R", "G") or the full color names, in any case.
func ParseColor(s string) (Color, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "R", "RED":
		return ColorRed, nil
	case "G", "GREEN":
		return ColorGreen, nil
	}

	return "", fmt.Errorf("unknown color %q", s)
}

// Other returns the opposing color.
func (c Color) Other() Color {
	if c == ColorRed {
		return ColorGreen
	}
	return ColorRed
}

func (c Color) String() string {
	return string(c)
}
