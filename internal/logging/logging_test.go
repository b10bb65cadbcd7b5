package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestSetupWritesToFile(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	path := filepath.Join(t.TempDir(), "game.log")
	closeLog, err := Setup(path, "debug")
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}

	log.Debug().Int("x", 25).Msg("player moved")
	if err := closeLog(); err != nil {
		t.Fatalf("close error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(content), "player moved") || !strings.Contains(string(content), "x=25") {
		t.Errorf("log file = %q, want message and field", content)
	}
}

func TestSetupCloseReportsErrors(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)
	prev := log.Logger
	defer func() { log.Logger = prev }()

	closeLog, err := Setup(filepath.Join(t.TempDir(), "game.log"), "")
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if err := closeLog(); err != nil {
		t.Fatalf("first close error = %v", err)
	}
	if err := closeLog(); !errors.Is(err, os.ErrClosed) {
		t.Errorf("second close error = %v, want %v", err, os.ErrClosed)
	}
}

func TestSetupInvalidLevel(t *testing.T) {
	if _, err := Setup("", "loud"); err == nil {
		t.Error("Setup() with invalid level should fail")
	}
}

func TestSetupWithoutPathDiscards(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	closeLog, err := Setup("", "")
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if err := closeLog(); err != nil {
		t.Errorf("close error = %v", err)
	}
	if got := zerolog.GlobalLevel(); got != zerolog.InfoLevel {
		t.Errorf("GlobalLevel() = %v, want %v", got, zerolog.InfoLevel)
	}
}

func TestNewHasNoColor(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf)
	logger.Info().Str("state", "running").Msg("frame")

	out := buf.String()
	if strings.Contains(out, "\x1b[") {
		t.Errorf("output %q contains ANSI escapes", out)
	}
	if !strings.Contains(out, "state=running") {
		t.Errorf("output %q missing field", out)
	}
}
