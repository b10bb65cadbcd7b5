// Package ui provides terminal rendering using tcell.
package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roguelike/internal/input"
)

// ScreenConfig holds the window settings applied at startup.
type ScreenConfig struct {
	Title string
	FPS   int // Presentation rate cap; 0 presents as fast as asked
}

// Screen is the game window on a terminal.
//
// In windowed mode the root console is framed by a border carrying the
// title when the terminal is large enough; otherwise, and always in
// fullscreen mode, it is drawn at the terminal origin with nothing around it.
type Screen struct {
	screen        tcell.Screen
	title         string
	fullscreen    bool
	closed        bool
	finalized     bool
	frameInterval time.Duration
	lastShow      time.Time
	lastKey       time.Time
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen(cfg ScreenConfig) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreenWith(s, cfg)
}

// NewScreenWith initializes s and wraps it. Tests pass a simulation screen.
func NewScreenWith(s tcell.Screen, cfg ScreenConfig) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}

	s.SetStyle(tcell.StyleDefault.Background(DefaultBackground).Foreground(DefaultForeground))
	s.SetTitle(cfg.Title)
	s.Clear()

	screen := &Screen{
		screen: s,
		title:  cfg.Title,
	}
	screen.SetTargetFrameRate(cfg.FPS)
	return screen, nil
}

// SetTargetFrameRate caps how often Present shows a frame. 0 removes the cap.
func (s *Screen) SetTargetFrameRate(fps int) {
	if fps <= 0 {
		s.frameInterval = 0
		return
	}
	s.frameInterval = time.Second / time.Duration(fps)
}

// IsFullscreen reports the current display mode.
func (s *Screen) IsFullscreen() bool {
	return s.fullscreen
}

// SetFullscreen switches the display mode; it takes effect on the next Present.
func (s *Screen) SetFullscreen(fullscreen bool) {
	s.fullscreen = fullscreen
}

// Present draws the root console to the terminal and shows it.
func (s *Screen) Present(root *Console) {
	s.screen.Clear()

	ox, oy := 0, 0
	if s.framed(root) {
		s.drawFrame(root.Width(), root.Height())
		ox, oy = 1, 1
	}

	for y := 0; y < root.Height(); y++ {
		for x := 0; x < root.Width(); x++ {
			cell := root.Cell(x, y)
			glyph := cell.Glyph
			if glyph == 0 {
				glyph = ' '
			}
			style := tcell.StyleDefault.Foreground(cell.Fg).Background(cell.Bg)
			s.screen.SetContent(ox+x, oy+y, glyph, nil, style)
		}
	}

	s.waitForFrame()
	s.screen.Show()
}

// framed reports whether root is drawn inside a border: only in windowed mode
// and only when the terminal has room for the border around every cell.
func (s *Screen) framed(root *Console) bool {
	if s.fullscreen {
		return false
	}
	w, h := s.screen.Size()
	return w >= root.Width()+2 && h >= root.Height()+2
}

// drawFrame draws a border around a w x h area with the title on top.
func (s *Screen) drawFrame(w, h int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	right, bottom := w+1, h+1

	for x := 1; x < right; x++ {
		s.screen.SetContent(x, 0, tcell.RuneHLine, nil, style)
		s.screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := 1; y < bottom; y++ {
		s.screen.SetContent(0, y, tcell.RuneVLine, nil, style)
		s.screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	s.screen.SetContent(0, 0, tcell.RuneULCorner, nil, style)
	s.screen.SetContent(right, 0, tcell.RuneURCorner, nil, style)
	s.screen.SetContent(0, bottom, tcell.RuneLLCorner, nil, style)
	s.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)

	if s.title == "" {
		return
	}
	titleStyle := tcell.StyleDefault.Foreground(DefaultForeground)
	x := 2
	for _, r := range " " + s.title + " " {
		if x >= right {
			break
		}
		s.screen.SetContent(x, 0, r, nil, titleStyle)
		x++
	}
}

// waitForFrame sleeps until the frame may be shown.
func (s *Screen) waitForFrame() {
	if wait := s.frameDelay(time.Now()); wait > 0 {
		time.Sleep(wait)
	}
	s.lastShow = time.Now()
}

// frameDelay returns how long a frame shown at now must wait for the cap.
// A frame answering a key read since the last show is never delayed.
func (s *Screen) frameDelay(now time.Time) time.Duration {
	if s.frameInterval <= 0 || s.lastShow.IsZero() || s.lastKey.After(s.lastShow) {
		return 0
	}
	return max(0, s.frameInterval-now.Sub(s.lastShow))
}

// WaitForKey blocks until a key is pressed.
// It returns false once the screen has been closed.
func (s *Screen) WaitForKey() (input.KeyEvent, bool) {
	for !s.closed {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			// tcell returns nil after the screen is finalized.
			s.closed = true
		case *tcell.EventKey:
			s.lastKey = time.Now()
			return input.FromTcell(ev), true
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
	return input.KeyEvent{}, false
}

// IsClosed reports whether the screen has been closed.
func (s *Screen) IsClosed() bool {
	return s.closed
}

// Close finalizes the screen and restores terminal state.
// It is safe to call more than once.
func (s *Screen) Close() {
	s.closed = true
	if s.finalized {
		return
	}
	s.finalized = true
	s.screen.Fini()
}
