package world

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Grid is a fixed-size rectangle of tiles.
// Tiles are stored column-major in a single slice indexed by x*height+y.
type Grid struct {
	width  int
	height int
	tiles  []Tile
}

// NewGrid creates a grid filled with walls.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("world: invalid grid size %dx%d", width, height))
	}

	tiles := make([]Tile, width*height)
	for i := range tiles {
		tiles[i] = Wall()
	}

	return &Grid{
		width:  width,
		height: height,
		tiles:  tiles,
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (x, y) addresses a tile of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// TileAt returns the tile at (x, y). Panics if out of bounds.
func (g *Grid) TileAt(x, y int) Tile {
	return g.tiles[g.index(x, y)]
}

// set replaces the tile at (x, y). Only map generation mutates a grid.
func (g *Grid) set(x, y int, t Tile) {
	g.tiles[g.index(x, y)] = t
}

func (g *Grid) index(x, y int) int {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("world: tile (%d,%d) out of bounds for %dx%d grid", x, y, g.width, g.height))
	}
	return x*g.height + y
}

// Fingerprint hashes the tile flags in storage order.
// Grids with the same dimensions and layout have the same fingerprint.
func (g *Grid) Fingerprint() uint64 {
	buf := make([]byte, len(g.tiles))
	for i, t := range g.tiles {
		var b byte
		if t.Blocked {
			b |= 1
		}
		if t.BlockSight {
			b |= 2
		}
		buf[i] = b
	}

	d := xxhash.New()
	fmt.Fprintf(d, "%dx%d:", g.width, g.height)
	d.Write(buf)
	return d.Sum64()
}
