// Package entity provides the positioned, drawable actors of the map.
package entity

import "github.com/gdamore/tcell/v2"

// Map answers whether a position can be occupied.
type Map interface {
	IsBlocked(x, y int) bool
}

// Entity is anything drawn on the map: the player, a monster, an item.
// Entities do not collide with each other, only with blocked tiles.
type Entity struct {
	Name  string      // Identifier used in logs
	X, Y  int         // Current position on the map
	Glyph rune        // Display symbol
	Color tcell.Color // Foreground color of the glyph
}

// New creates an entity at the given position.
func New(name string, x, y int, glyph rune, color tcell.Color) *Entity {
	return &Entity{
		Name:  name,
		X:     x,
		Y:     y,
		Glyph: glyph,
		Color: color,
	}
}

// MoveBy moves the entity by the given delta unless the destination is blocked.
// Walking into a wall is not an error; it reports false and leaves the
// position unchanged.
func (e *Entity) MoveBy(m Map, dx, dy int) bool {
	x := e.X + dx
	y := e.Y + dy

	if m.IsBlocked(x, y) {
		return false
	}

	e.X = x
	e.Y = y
	return true
}
