package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/roguelike/internal/entity"
	"github.com/samdwyer/roguelike/internal/world"
)

// Renderer composes the map and entities into a frame.
type Renderer struct {
	darkWall   tcell.Color
	darkGround tcell.Color
}

// NewRenderer creates a renderer with the two map background tints.
func NewRenderer(darkWall, darkGround tcell.Color) *Renderer {
	return &Renderer{
		darkWall:   darkWall,
		darkGround: darkGround,
	}
}

// RenderAll draws entities and map backgrounds onto con, then blits con onto
// root at the origin.
// Glyphs and backgrounds are separate channels, so the draw order does not
// change the result.
func (r *Renderer) RenderAll(con, root *Console, w *world.World, entities []*entity.Entity) {
	for _, e := range entities {
		r.drawEntity(con, e)
	}

	for y := 0; y < w.Height(); y++ {
		for x := 0; x < w.Width(); x++ {
			con.SetCharBackground(x, y, r.Background(w.TileAt(x, y)))
		}
	}

	Blit(con, 0, 0, w.Width(), w.Height(), root, 0, 0, 1.0, 1.0)
}

// Background returns the tint for a tile: sight-blocking tiles are walls.
func (r *Renderer) Background(t world.Tile) tcell.Color {
	if t.BlockSight {
		return r.darkWall
	}
	return r.darkGround
}

func (r *Renderer) drawEntity(con *Console, e *entity.Entity) {
	con.SetDefaultForeground(e.Color)
	con.PutChar(e.X, e.Y, e.Glyph)
}
