package game

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/roguelike/internal/config"
	"github.com/samdwyer/roguelike/internal/entity"
	"github.com/samdwyer/roguelike/internal/input"
	"github.com/samdwyer/roguelike/internal/telemetry"
	"github.com/samdwyer/roguelike/internal/ui"
	"github.com/samdwyer/roguelike/internal/world"
)

// Window is the display the game draws on and reads keys from.
// *ui.Screen implements it on a terminal.
type Window interface {
	// Present shows a composed frame.
	Present(root *ui.Console)
	// WaitForKey blocks for one key press; false means the window closed.
	WaitForKey() (input.KeyEvent, bool)
	IsClosed() bool
	IsFullscreen() bool
	SetFullscreen(fullscreen bool)
	Close()
}

// Game holds the entire game state.
type Game struct {
	window   Window
	renderer *ui.Renderer
	con      *ui.Console // Offscreen map console, redrawn every frame
	root     *ui.Console // Full screen console presented to the window
	world    *world.World
	entities []*entity.Entity // entities[0] is the player
	state    State
}

// New creates a game from cfg that draws on window.
// The map is generated here and never changes afterwards.
func New(ctx context.Context, cfg *config.Config, window Window) (*Game, error) {
	if window == nil {
		return nil, errors.New("game: window is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	g := &Game{
		window: window,
		renderer: ui.NewRenderer(
			cfg.Colors.DarkWall.Color(),
			cfg.Colors.DarkGround.Color(),
		),
		con:      ui.NewConsole(cfg.Map.Width, cfg.Map.Height),
		root:     ui.NewConsole(cfg.Screen.Width, cfg.Screen.Height),
		world:    world.NewFromLayout(ctx, cfg.Map.Width, cfg.Map.Height, cfg.WorldLayout()),
		entities: cfg.NewEntities(),
		state:    StateRunning,
	}

	player := g.Player()
	for _, e := range g.entities {
		if g.world.IsBlocked(e.X, e.Y) {
			log.Warn().Str("entity", e.Name).Int("x", e.X).Int("y", e.Y).Msg("entity starts on a blocked tile")
		}
	}

	span.SetAttributes(
		attribute.Int("map.rooms", len(cfg.Layout.Rooms)),
		attribute.Int("entities", len(g.entities)),
		attribute.Int("player.start_x", player.X),
		attribute.Int("player.start_y", player.Y),
	)
	log.Info().
		Int("entities", len(g.entities)).
		Int("player_x", player.X).
		Int("player_y", player.Y).
		Msg("game initialized")

	return g, nil
}

// Player returns the entity moved by the arrow keys.
func (g *Game) Player() *entity.Entity {
	return g.entities[0]
}

// Entities returns every entity, player first.
func (g *Game) Entities() []*entity.Entity {
	return g.entities
}

// World returns the game map.
func (g *Game) World() *world.World {
	return g.world
}

// State returns the loop state.
func (g *Game) State() State {
	return g.state
}

// Run executes the main game loop until the player quits or the window
// closes, then closes the window.
func (g *Game) Run(ctx context.Context) error {
	for g.state == StateRunning {
		g.Step(ctx)
	}

	log.Info().Msg("game loop finished")
	g.window.Close()
	return nil
}

// Step runs one frame: draw, present, wait for one key and act on it.
func (g *Game) Step(ctx context.Context) {
	if g.state != StateRunning {
		return
	}
	if g.window.IsClosed() {
		g.setState(StateExiting)
		return
	}

	g.con.Clear()
	g.renderer.RenderAll(g.con, g.root, g.world, g.entities)
	g.window.Present(g.root)

	ev, ok := g.window.WaitForKey()
	if !ok {
		g.setState(StateExiting)
		return
	}
	g.handleKey(ctx, ev)
}

// handleKey applies the action bound to a key.
func (g *Game) handleKey(ctx context.Context, ev input.KeyEvent) {
	action := input.Resolve(ev)
	if action.Kind == input.ActionNone {
		return
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.action")
	defer span.End()
	span.SetAttributes(
		attribute.String("action", action.Kind.String()),
		attribute.String("key", ev.Code.String()),
	)

	switch action.Kind {
	case input.ActionMove:
		player := g.Player()
		moved := player.MoveBy(g.world, action.DX, action.DY)
		span.SetAttributes(
			attribute.Bool("moved", moved),
			attribute.Int("player.x", player.X),
			attribute.Int("player.y", player.Y),
		)
		log.Debug().
			Int("dx", action.DX).
			Int("dy", action.DY).
			Bool("moved", moved).
			Int("x", player.X).
			Int("y", player.Y).
			Msg("player move")

	case input.ActionToggleFullscreen:
		fullscreen := !g.window.IsFullscreen()
		g.window.SetFullscreen(fullscreen)
		span.SetAttributes(attribute.Bool("fullscreen", fullscreen))
		log.Debug().Bool("fullscreen", fullscreen).Msg("display mode changed")

	case input.ActionExit:
		g.setState(StateExiting)
	}
}

func (g *Game) setState(s State) {
	if g.state == s {
		return
	}
	log.Debug().Stringer("from", g.state).Stringer("to", s).Msg("state change")
	g.state = s
}
