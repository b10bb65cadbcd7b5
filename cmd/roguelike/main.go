// Package main is the entry point for the roguelike.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/samdwyer/roguelike/internal/config"
	"github.com/samdwyer/roguelike/internal/devtools"
	"github.com/samdwyer/roguelike/internal/game"
	"github.com/samdwyer/roguelike/internal/logging"
	"github.com/samdwyer/roguelike/internal/telemetry"
	"github.com/samdwyer/roguelike/internal/ui"
	"github.com/samdwyer/roguelike/internal/world"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "roguelike: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Env vars may also be set directly, so a missing .env is fine
	envErr := godotenv.Load()

	closeLog, err := logging.Setup(os.Getenv("ROGUELIKE_LOG"), os.Getenv("ROGUELIKE_LOG_LEVEL"))
	if err != nil {
		return err
	}
	defer func() {
		// The screen is finalized by now, so stderr is ours again
		if err := closeLog(); err != nil {
			fmt.Fprintf(os.Stderr, "roguelike: failed to close log: %v\n", err)
		}
	}()

	if envErr != nil {
		log.Debug().Err(envErr).Msg(".env file not loaded")
	}

	sessionID := uuid.NewString()
	log.Info().Str("session", sessionID).Msg("starting")

	ctx := context.Background()

	if setupOTelEnv() {
		shutdown, err := telemetry.Setup(ctx, sessionID)
		if err != nil {
			log.Warn().Err(err).Msg("telemetry setup failed, running without it")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Warn().Err(err).Msg("telemetry shutdown failed")
				}
			}()
		}
	}

	cfg, err := config.Load(os.Getenv("ROGUELIKE_CONFIG"))
	if err != nil {
		return err
	}

	if path := os.Getenv("ROGUELIKE_DUMP_MAP"); path != "" {
		if err := dumpMap(ctx, cfg, path); err != nil {
			return err
		}
		if path == "-" {
			return nil
		}
	}

	checkTerminalSize(cfg)

	screen, err := ui.NewScreen(ui.ScreenConfig{Title: cfg.Title, FPS: cfg.FPS})
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}

	g, err := game.New(ctx, cfg, screen)
	if err != nil {
		screen.Close()
		return fmt.Errorf("failed to initialize game: %w", err)
	}

	if err := g.Run(ctx); err != nil {
		return fmt.Errorf("game error: %w", err)
	}

	log.Info().Msg("exiting")
	return nil
}

// setupOTelEnv points the OTLP exporter at Honeycomb.
// It returns false when no API key is configured.
func setupOTelEnv() bool {
	apiKey := os.Getenv("HONEYCOMB_ROGUELIKE_API_KEY")
	if apiKey == "" {
		return false
	}
	dataset := os.Getenv("HONEYCOMB_ROGUELIKE_DATASET")
	if dataset == "" {
		dataset = "roguelike"
	}

	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	return true
}

// dumpMap writes the starting map as text. "-" means stdout, colored when
// stdout is a terminal.
func dumpMap(ctx context.Context, cfg *config.Config, path string) error {
	wld := world.NewFromLayout(ctx, cfg.Map.Width, cfg.Map.Height, cfg.WorldLayout())
	wall, ground := cfg.Colors.DarkWall.Color(), cfg.Colors.DarkGround.Color()

	if path == "-" {
		colored := term.IsTerminal(int(os.Stdout.Fd()))
		return devtools.DumpMap(os.Stdout, wld, cfg.NewEntities(), wall, ground, colored)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create map dump: %w", err)
	}
	if err := devtools.DumpMap(f, wld, cfg.NewEntities(), wall, ground, false); err != nil {
		f.Close()
		return fmt.Errorf("failed to write map dump: %w", err)
	}
	log.Info().Str("path", path).Msg("map dumped")
	return f.Close()
}

// checkTerminalSize warns when the terminal cannot show the whole screen.
func checkTerminalSize(cfg *config.Config) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		log.Debug().Err(err).Msg("terminal size unknown")
		return
	}
	// Windowed mode adds a one cell border on every side
	if w < cfg.Screen.Width+2 || h < cfg.Screen.Height+2 {
		log.Warn().
			Int("terminal_width", w).
			Int("terminal_height", h).
			Int("screen_width", cfg.Screen.Width).
			Int("screen_height", cfg.Screen.Height).
			Msg("terminal smaller than the game screen")
	}
}
