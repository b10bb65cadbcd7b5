package world

// Rect is a rectangle on the map, used to describe a room.
// X2 and Y2 are exclusive.
type Rect struct {
	X1, Y1 int // Top-left corner
	X2, Y2 int // Bottom-right corner
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Tunnel is a straight, one tile wide corridor between two points.
// Both endpoints are carved.
type Tunnel struct {
	X1, Y1 int
	X2, Y2 int
}

// IsHorizontal returns true if the tunnel runs along a row.
func (t Tunnel) IsHorizontal() bool {
	return t.Y1 == t.Y2
}

// IsStraight returns true if the endpoints share a row or a column.
func (t Tunnel) IsStraight() bool {
	return t.X1 == t.X2 || t.Y1 == t.Y2
}

// Layout lists the rooms and tunnels to carve into an all-wall grid.
type Layout struct {
	Rooms   []Rect
	Tunnels []Tunnel
}
