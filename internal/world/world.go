package world

import "context"

// World owns the generated grid and answers tile queries.
// Its topology never changes after creation.
type World struct {
	grid *Grid
}

// New creates a world around an already generated grid.
func New(grid *Grid) *World {
	return &World{grid: grid}
}

// NewFromLayout generates a grid from layout and wraps it in a world.
func NewFromLayout(ctx context.Context, width, height int, layout Layout) *World {
	return New(Generate(ctx, width, height, layout))
}

// Width returns the map width.
func (w *World) Width() int {
	return w.grid.Width()
}

// Height returns the map height.
func (w *World) Height() int {
	return w.grid.Height()
}

// TileAt returns the tile at (x, y). Panics if out of bounds.
func (w *World) TileAt(x, y int) Tile {
	return w.grid.TileAt(x, y)
}

// IsBlocked returns true if nothing may stand at (x, y).
// Positions off the map are blocked.
func (w *World) IsBlocked(x, y int) bool {
	if !w.grid.InBounds(x, y) {
		return true
	}
	return !w.grid.TileAt(x, y).IsPassable()
}
