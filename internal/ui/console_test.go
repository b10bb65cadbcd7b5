package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestConsoleClear(t *testing.T) {
	c := NewConsole(4, 3)
	c.SetDefaultForeground(tcell.ColorYellow)
	c.PutChar(1, 1, 'X')
	c.SetCharBackground(2, 2, tcell.ColorBlue)

	c.Clear()

	want := Cell{Fg: DefaultForeground, Bg: DefaultBackground}
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if got := c.Cell(x, y); got != want {
				t.Errorf("Cell(%d,%d) after Clear() = %+v, want %+v", x, y, got, want)
			}
		}
	}

	c.PutChar(0, 0, '@')
	if got := c.Cell(0, 0).Fg; got != DefaultForeground {
		t.Errorf("Clear() should reset the default foreground, got %v", got)
	}
}

func TestConsoleChannelsAreIndependent(t *testing.T) {
	wall := tcell.NewRGBColor(0, 0, 100)

	// Glyph first, then background
	a := NewConsole(3, 3)
	a.SetDefaultForeground(tcell.ColorYellow)
	a.PutChar(1, 1, 'X')
	a.SetCharBackground(1, 1, wall)

	// Background first, then glyph
	b := NewConsole(3, 3)
	b.SetCharBackground(1, 1, wall)
	b.SetDefaultForeground(tcell.ColorYellow)
	b.PutChar(1, 1, 'X')

	want := Cell{Glyph: 'X', Fg: tcell.ColorYellow, Bg: wall}
	if got := a.Cell(1, 1); got != want {
		t.Errorf("glyph then background = %+v, want %+v", got, want)
	}
	if got := b.Cell(1, 1); got != want {
		t.Errorf("background then glyph = %+v, want %+v", got, want)
	}
}

func TestConsoleOutOfRangeIsIgnored(t *testing.T) {
	c := NewConsole(2, 2)
	c.PutChar(-1, 0, 'X')
	c.PutChar(2, 0, 'X')
	c.SetCharBackground(0, 5, tcell.ColorRed)

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if c.Cell(x, y).Glyph != 0 || c.Cell(x, y).Bg != DefaultBackground {
				t.Errorf("Cell(%d,%d) = %+v, want untouched", x, y, c.Cell(x, y))
			}
		}
	}
	if got := c.Cell(9, 9); got != (Cell{}) {
		t.Errorf("Cell(9,9) = %+v, want zero cell", got)
	}
}

func TestBlitFullAlphaCopies(t *testing.T) {
	src := NewConsole(3, 2)
	src.SetDefaultForeground(tcell.ColorYellow)
	src.PutChar(0, 0, 'X')
	src.SetCharBackground(0, 0, tcell.NewRGBColor(50, 50, 150))
	src.SetCharBackground(2, 1, tcell.NewRGBColor(0, 0, 100))

	dst := NewConsole(5, 4)
	dst.PutChar(2, 1, 'o')
	Blit(src, 0, 0, 3, 2, dst, 1, 1, 1.0, 1.0)

	tests := []struct {
		x, y int
		want Cell
	}{
		{1, 1, Cell{Glyph: 'X', Fg: tcell.ColorYellow, Bg: tcell.NewRGBColor(50, 50, 150)}},
		// Empty source cell erases the destination glyph
		{2, 1, Cell{Fg: DefaultForeground, Bg: DefaultBackground}},
		{3, 2, Cell{Fg: DefaultForeground, Bg: tcell.NewRGBColor(0, 0, 100)}},
		// Outside the blitted region
		{0, 0, Cell{Fg: DefaultForeground, Bg: DefaultBackground}},
		{4, 3, Cell{Fg: DefaultForeground, Bg: DefaultBackground}},
	}

	for _, tt := range tests {
		if got := dst.Cell(tt.x, tt.y); got != tt.want {
			t.Errorf("dst.Cell(%d,%d) = %+v, want %+v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestBlitZeroAlphaLeavesChannel(t *testing.T) {
	src := NewConsole(1, 1)
	src.SetDefaultForeground(tcell.ColorYellow)
	src.PutChar(0, 0, 'X')
	src.SetCharBackground(0, 0, tcell.ColorRed)

	fgOnly := NewConsole(1, 1)
	Blit(src, 0, 0, 1, 1, fgOnly, 0, 0, 1.0, 0.0)
	if got := fgOnly.Cell(0, 0); got.Glyph != 'X' || got.Bg != DefaultBackground {
		t.Errorf("fg-only blit = %+v, want glyph copied and background kept", got)
	}

	bgOnly := NewConsole(1, 1)
	Blit(src, 0, 0, 1, 1, bgOnly, 0, 0, 0.0, 1.0)
	if got := bgOnly.Cell(0, 0); got.Glyph != 0 || got.Bg != tcell.ColorRed {
		t.Errorf("bg-only blit = %+v, want background copied and no glyph", got)
	}
}

func TestBlitHalfAlphaMixes(t *testing.T) {
	src := NewConsole(1, 1)
	src.SetCharBackground(0, 0, tcell.NewRGBColor(200, 100, 0))

	dst := NewConsole(1, 1)
	dst.SetCharBackground(0, 0, tcell.NewRGBColor(0, 100, 200))

	Blit(src, 0, 0, 1, 1, dst, 0, 0, 0.0, 0.5)

	r, g, b := dst.Cell(0, 0).Bg.RGB()
	if r != 100 || g != 100 || b != 100 {
		t.Errorf("half blend = (%d,%d,%d), want (100,100,100)", r, g, b)
	}
}

func TestBlitClipsToBothConsoles(t *testing.T) {
	src := NewConsole(4, 4)
	src.PutChar(3, 3, 'Z')

	dst := NewConsole(2, 2)
	// Region larger than both consoles and offset past the edge
	Blit(src, 0, 0, 10, 10, dst, -2, -2, 1.0, 1.0)

	if got := dst.Cell(1, 1).Glyph; got != 'Z' {
		t.Errorf("dst.Cell(1,1).Glyph = %q, want 'Z'", got)
	}
}

func TestBlitPartialAlphaKeepsGlyphUnderEmptyCell(t *testing.T) {
	src := NewConsole(2, 1)
	src.SetDefaultForeground(tcell.NewRGBColor(200, 0, 0))
	src.PutChar(1, 0, 'X')

	dst := NewConsole(2, 1)
	dst.SetDefaultForeground(tcell.NewRGBColor(0, 0, 200))
	dst.PutChar(0, 0, 'o')
	dst.PutChar(1, 0, 'o')

	Blit(src, 0, 0, 2, 1, dst, 0, 0, 0.5, 0.0)

	if got := dst.Cell(0, 0).Glyph; got != 'o' {
		t.Errorf("dst.Cell(0,0).Glyph = %q, want 'o' kept", got)
	}
	if got := dst.Cell(1, 0).Glyph; got != 'X' {
		t.Errorf("dst.Cell(1,0).Glyph = %q, want 'X'", got)
	}
	if r, g, b := dst.Cell(1, 0).Fg.RGB(); r != 100 || g != 0 || b != 100 {
		t.Errorf("dst.Cell(1,0).Fg = (%d,%d,%d), want (100,0,100)", r, g, b)
	}
}
