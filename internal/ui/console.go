package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// DefaultForeground is the glyph color of a cleared console.
	DefaultForeground = tcell.ColorWhite
	// DefaultBackground is the cell background of a cleared console.
	DefaultBackground = tcell.ColorBlack
)

// Cell is one character cell of a console.
// The glyph with its foreground and the background are independent:
// setting one never erases the other.
type Cell struct {
	Glyph rune // 0 when nothing is drawn
	Fg    tcell.Color
	Bg    tcell.Color
}

// Console is an in-memory grid of cells.
// A frame is composed on an offscreen console, blitted to the root console,
// and the root console is presented by the window.
type Console struct {
	width  int
	height int
	fg     tcell.Color
	cells  []Cell
}

// NewConsole creates a cleared console.
func NewConsole(width, height int) *Console {
	c := &Console{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	c.Clear()
	return c
}

// Width returns the number of columns.
func (c *Console) Width() int {
	return c.width
}

// Height returns the number of rows.
func (c *Console) Height() int {
	return c.height
}

// Clear erases every glyph and resets colors to the defaults.
func (c *Console) Clear() {
	c.fg = DefaultForeground
	for i := range c.cells {
		c.cells[i] = Cell{Fg: DefaultForeground, Bg: DefaultBackground}
	}
}

// SetDefaultForeground sets the color used by subsequent PutChar calls.
func (c *Console) SetDefaultForeground(color tcell.Color) {
	c.fg = color
}

// PutChar draws a glyph in the default foreground color.
// The cell background is left untouched. Out of range positions are ignored.
func (c *Console) PutChar(x, y int, glyph rune) {
	if !c.inBounds(x, y) {
		return
	}
	cell := &c.cells[y*c.width+x]
	cell.Glyph = glyph
	cell.Fg = c.fg
}

// SetCharBackground sets the background color of a cell.
// The glyph is left untouched. Out of range positions are ignored.
func (c *Console) SetCharBackground(x, y int, color tcell.Color) {
	if !c.inBounds(x, y) {
		return
	}
	c.cells[y*c.width+x].Bg = color
}

// Cell returns the cell at (x, y), or a zero Cell when out of range.
func (c *Console) Cell(x, y int) Cell {
	if !c.inBounds(x, y) {
		return Cell{}
	}
	return c.cells[y*c.width+x]
}

func (c *Console) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Blit copies the w x h region at (x, y) of src onto dst at (dx, dy).
//
// fgAlpha and bgAlpha weight the source against the destination for the
// glyph and background channels: 1 copies the source, 0 leaves the
// destination channel as it was, values in between mix the colors.
// Below full alpha an empty source cell keeps the destination glyph.
func Blit(src *Console, x, y, w, h int, dst *Console, dx, dy int, fgAlpha, bgAlpha float64) {
	fgAlpha = clamp01(fgAlpha)
	bgAlpha = clamp01(bgAlpha)

	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			sx, sy := x+col, y+row
			tx, ty := dx+col, dy+row
			if !src.inBounds(sx, sy) || !dst.inBounds(tx, ty) {
				continue
			}

			s := src.cells[sy*src.width+sx]
			d := &dst.cells[ty*dst.width+tx]

			if bgAlpha > 0 {
				d.Bg = blend(d.Bg, s.Bg, bgAlpha)
			}
			if fgAlpha > 0 {
				if s.Glyph != 0 || fgAlpha >= 1 {
					d.Glyph = s.Glyph
				}
				d.Fg = blend(d.Fg, s.Fg, fgAlpha)
			}
		}
	}
}

// blend mixes from towards to by t.
func blend(from, to tcell.Color, t float64) tcell.Color {
	if t >= 1 {
		return to
	}
	a, okA := toColorful(from)
	b, okB := toColorful(to)
	if !okA || !okB {
		// Palette-less colors (ColorDefault) cannot be mixed.
		return to
	}
	r, g, bl := a.BlendRgb(b, t).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}

func toColorful(c tcell.Color) (colorful.Color, bool) {
	r, g, b := c.RGB()
	if r < 0 {
		return colorful.Color{}, false
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, true
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}
