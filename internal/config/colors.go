package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// HexColor is a color written as "#RRGGBB" (the leading # is optional).
type HexColor string

// Parse converts the color to a tcell.Color.
func (h HexColor) Parse() (tcell.Color, error) {
	digits := strings.TrimPrefix(string(h), "#")
	if len(digits) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: want 6 digits", string(h))
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: %w", string(h), err)
	}

	return tcell.NewHexColor(int32(v)), nil
}

// Color returns the parsed color, or tcell.ColorDefault if h does not parse.
// Validated configs always parse.
func (h HexColor) Color() tcell.Color {
	c, err := h.Parse()
	if err != nil {
		return tcell.ColorDefault
	}
	return c
}
