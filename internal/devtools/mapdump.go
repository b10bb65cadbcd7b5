// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/gookit/color"

	"github.com/samdwyer/roguelike/internal/entity"
	"github.com/samdwyer/roguelike/internal/world"
)

const (
	wallSymbol   = '#'
	groundSymbol = '.'
)

// DumpMap writes the map as text, one line per row: '#' for sight-blocking
// tiles, '.' for the rest, entity glyphs on top (later entities win).
// With colored set, every cell is wrapped in truecolor escapes using the
// entity color over the wall or ground tint.
func DumpMap(w io.Writer, wld *world.World, entities []*entity.Entity, wall, ground tcell.Color, colored bool) error {
	glyphs := make(map[[2]int]*entity.Entity, len(entities))
	for _, e := range entities {
		glyphs[[2]int{e.X, e.Y}] = e
	}

	wallBg := toRGB(wall, true)
	groundBg := toRGB(ground, true)
	plainFg := color.RGB(0xc0, 0xc0, 0xc0)

	bw := bufio.NewWriter(w)
	for y := 0; y < wld.Height(); y++ {
		for x := 0; x < wld.Width(); x++ {
			tile := wld.TileAt(x, y)

			symbol := rune(groundSymbol)
			bg := groundBg
			if tile.BlockSight {
				symbol = wallSymbol
				bg = wallBg
			}

			fg := plainFg
			if e, ok := glyphs[[2]int{x, y}]; ok {
				symbol = e.Glyph
				fg = toRGB(e.Color, false)
			}

			if colored {
				bw.WriteString(color.NewRGBStyle(fg, bg).Sprint(string(symbol)))
			} else {
				bw.WriteRune(symbol)
			}
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

func toRGB(c tcell.Color, isBg bool) color.RGBColor {
	r, g, b := c.RGB()
	if r < 0 {
		r, g, b = 0xc0, 0xc0, 0xc0
	}
	return color.RGB(uint8(r), uint8(g), uint8(b), isBg)
}
