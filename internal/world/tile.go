// Package world provides the tile map, its generation and collision queries.
package world

// Tile represents a single map tile.
// Blocked and BlockSight are independent: a window can stop movement
// without stopping sight.
type Tile struct {
	Blocked    bool // Cannot be entered
	BlockSight bool // Opaque to sight
}

// Wall returns an impassable, opaque tile.
func Wall() Tile {
	return Tile{Blocked: true, BlockSight: true}
}

// Floor returns a passable, transparent tile.
func Floor() Tile {
	return Tile{}
}

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return !t.Blocked
}
