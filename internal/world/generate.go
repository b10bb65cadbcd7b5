package world

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roguelike/internal/telemetry"
)

// Generate builds a grid of the given size from a layout.
// The grid starts as solid wall; rooms and tunnels are carved in order.
// Overlapping rooms and tunnels simply union their floor tiles.
func Generate(ctx context.Context, width, height int, layout Layout) *Grid {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "map.generate")
	defer span.End()

	startTime := time.Now()

	g := NewGrid(width, height)
	for _, room := range layout.Rooms {
		g.carveRoom(room)
	}
	for _, t := range layout.Tunnels {
		g.carveTunnel(t)
	}

	fingerprint := g.Fingerprint()

	span.SetAttributes(
		attribute.Int("map.width", width),
		attribute.Int("map.height", height),
		attribute.Int("map.room_count", len(layout.Rooms)),
		attribute.Int("map.tunnel_count", len(layout.Tunnels)),
		attribute.String("map.fingerprint", formatFingerprint(fingerprint)),
		attribute.Int64("map.generation_ms", time.Since(startTime).Milliseconds()),
	)

	log.Debug().
		Int("width", width).
		Int("height", height).
		Int("rooms", len(layout.Rooms)).
		Int("tunnels", len(layout.Tunnels)).
		Str("fingerprint", formatFingerprint(fingerprint)).
		Msg("map generated")

	return g
}

// carveRoom clears the interior of the room, leaving its border as wall.
func (g *Grid) carveRoom(room Rect) {
	for x := room.X1 + 1; x < room.X2; x++ {
		for y := room.Y1 + 1; y < room.Y2; y++ {
			g.set(x, y, Floor())
		}
	}
}

// carveTunnel dispatches a straight tunnel to the matching carver.
func (g *Grid) carveTunnel(t Tunnel) {
	if t.IsHorizontal() {
		g.carveHorizontalTunnel(t.X1, t.X2, t.Y1)
	} else {
		g.carveVerticalTunnel(t.Y1, t.Y2, t.X1)
	}
}

// carveHorizontalTunnel carves a horizontal tunnel, both ends inclusive.
func (g *Grid) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		g.set(x, y, Floor())
	}
}

// carveVerticalTunnel carves a vertical tunnel, both ends inclusive.
func (g *Grid) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		g.set(x, y, Floor())
	}
}

func formatFingerprint(f uint64) string {
	return fmt.Sprintf("%016x", f)
}
