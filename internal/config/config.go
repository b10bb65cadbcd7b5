// Package config loads the game configuration from YAML.
//
// The built-in defaults reproduce the classic demo: an 80x50 screen, an 80x45
// map with two rooms joined by a tunnel, a player and one other entity.
// A file given to Load is decoded on top of the defaults, so it only needs the
// keys it changes. Lists (rooms, tunnels, entities) are replaced as a whole.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"github.com/zyedidia/generic/mapset"
	"gopkg.in/yaml.v3"

	"github.com/samdwyer/roguelike/internal/entity"
	"github.com/samdwyer/roguelike/internal/world"
)

// Config holds every tunable of the game.
type Config struct {
	Title    string         `yaml:"title"`
	Screen   Size           `yaml:"screen"` // Terminal area in cells
	Map      Size           `yaml:"map"`    // Map area in cells, drawn at the screen origin
	FPS      int            `yaml:"fps"`    // Presentation rate cap, 0 for none
	Colors   Colors         `yaml:"colors"`
	Layout   LayoutConfig   `yaml:"layout"`
	Entities []EntityConfig `yaml:"entities"` // The first entity is the player
}

// Size is a width and height in cells.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Colors holds the map background tints.
type Colors struct {
	DarkWall   HexColor `yaml:"darkWall"`
	DarkGround HexColor `yaml:"darkGround"`
}

// LayoutConfig describes the rooms and tunnels carved into the map.
type LayoutConfig struct {
	Rooms   []RoomConfig   `yaml:"rooms"`
	Tunnels []TunnelConfig `yaml:"tunnels"`
}

// RoomConfig is a room's top-left corner and outer size.
// The carved interior is one tile smaller on every side.
type RoomConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// TunnelConfig is a straight tunnel between two points, both carved.
type TunnelConfig struct {
	X1 int `yaml:"x1"`
	Y1 int `yaml:"y1"`
	X2 int `yaml:"x2"`
	Y2 int `yaml:"y2"`
}

// EntityConfig places one entity on the map.
type EntityConfig struct {
	Name  string   `yaml:"name"`
	Glyph string   `yaml:"glyph"` // A single character of terminal width 1
	Color HexColor `yaml:"color"`
	X     int      `yaml:"x"`
	Y     int      `yaml:"y"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := decode(&Config{}, defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("config: built-in defaults are invalid: %v", err))
	}
	return cfg
}

// Load returns the defaults overlaid with the YAML file at path.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := decode(Default(), data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// decode unmarshals data onto cfg and validates the result.
func decode(cfg *Config, data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration describes a drawable map.
func (c *Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size %dx%d must be positive", c.Screen.Width, c.Screen.Height)
	}
	if c.Map.Width <= 0 || c.Map.Height <= 0 {
		return fmt.Errorf("map size %dx%d must be positive", c.Map.Width, c.Map.Height)
	}
	if c.Map.Width > c.Screen.Width || c.Map.Height > c.Screen.Height {
		return fmt.Errorf("map %dx%d does not fit on screen %dx%d",
			c.Map.Width, c.Map.Height, c.Screen.Width, c.Screen.Height)
	}
	if c.FPS < 0 {
		return fmt.Errorf("fps %d must not be negative", c.FPS)
	}

	if _, err := c.Colors.DarkWall.Parse(); err != nil {
		return fmt.Errorf("colors.darkWall: %w", err)
	}
	if _, err := c.Colors.DarkGround.Parse(); err != nil {
		return fmt.Errorf("colors.darkGround: %w", err)
	}

	for i, r := range c.Layout.Rooms {
		if r.W < 0 || r.H < 0 {
			return fmt.Errorf("layout.rooms[%d]: size %dx%d must not be negative", i, r.W, r.H)
		}
		// Carving touches (x, y) through (x+w-1, y+h-1) at most.
		if !c.inMap(r.X, r.Y) || !c.inMap(r.X+r.W-1, r.Y+r.H-1) {
			return fmt.Errorf("layout.rooms[%d]: (%d,%d %dx%d) is outside the map", i, r.X, r.Y, r.W, r.H)
		}
	}

	for i, t := range c.Layout.Tunnels {
		if !t.tunnel().IsStraight() {
			return fmt.Errorf("layout.tunnels[%d]: (%d,%d)-(%d,%d) is not straight", i, t.X1, t.Y1, t.X2, t.Y2)
		}
		if !c.inMap(t.X1, t.Y1) || !c.inMap(t.X2, t.Y2) {
			return fmt.Errorf("layout.tunnels[%d]: (%d,%d)-(%d,%d) is outside the map", i, t.X1, t.Y1, t.X2, t.Y2)
		}
	}

	if len(c.Entities) == 0 {
		return errors.New("at least one entity (the player) is required")
	}

	names := mapset.New[string]()
	for i, e := range c.Entities {
		if e.Name == "" {
			return fmt.Errorf("entities[%d]: name is required", i)
		}
		if names.Has(e.Name) {
			return fmt.Errorf("entities[%d]: duplicate name %q", i, e.Name)
		}
		names.Put(e.Name)

		if utf8.RuneCountInString(e.Glyph) != 1 || uniseg.StringWidth(e.Glyph) != 1 {
			return fmt.Errorf("entities[%d] %s: glyph %q must be one single-width character", i, e.Name, e.Glyph)
		}
		if _, err := e.Color.Parse(); err != nil {
			return fmt.Errorf("entities[%d] %s: %w", i, e.Name, err)
		}
		if !c.inMap(e.X, e.Y) {
			return fmt.Errorf("entities[%d] %s: position (%d,%d) is outside the map", i, e.Name, e.X, e.Y)
		}
	}

	return nil
}

func (c *Config) inMap(x, y int) bool {
	return x >= 0 && x < c.Map.Width && y >= 0 && y < c.Map.Height
}

// WorldLayout converts the configured rooms and tunnels.
func (c *Config) WorldLayout() world.Layout {
	layout := world.Layout{
		Rooms:   make([]world.Rect, 0, len(c.Layout.Rooms)),
		Tunnels: make([]world.Tunnel, 0, len(c.Layout.Tunnels)),
	}
	for _, r := range c.Layout.Rooms {
		layout.Rooms = append(layout.Rooms, world.NewRect(r.X, r.Y, r.W, r.H))
	}
	for _, t := range c.Layout.Tunnels {
		layout.Tunnels = append(layout.Tunnels, t.tunnel())
	}
	return layout
}

func (t TunnelConfig) tunnel() world.Tunnel {
	return world.Tunnel{X1: t.X1, Y1: t.Y1, X2: t.X2, Y2: t.Y2}
}

// NewEntities creates the configured entities. The player comes first.
func (c *Config) NewEntities() []*entity.Entity {
	entities := make([]*entity.Entity, 0, len(c.Entities))
	for _, e := range c.Entities {
		glyph, _ := utf8.DecodeRuneInString(e.Glyph)
		entities = append(entities, entity.New(e.Name, e.X, e.Y, glyph, e.Color.Color()))
	}
	return entities
}
