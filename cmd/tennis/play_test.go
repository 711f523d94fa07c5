package main

import (
	"bytes"
	"errors"
	"io"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tennis/internal/config"
	"github.com/vovakirdan/tui-tennis/internal/core"
	"github.com/vovakirdan/tui-tennis/internal/games/tennis"
	"github.com/vovakirdan/tui-tennis/internal/registry"
	"github.com/vovakirdan/tui-tennis/internal/storage"
)

func TestApplyOverrides(t *testing.T) {
	flagFPS, flagLogLevel, flagLogFile = 30, "debug", "/tmp/tennis.log"
	t.Cleanup(func() { flagFPS, flagLogLevel, flagLogFile = 60, "", "" })

	tests := []struct {
		name    string
		changed []string
		check   func(config.Config) bool
	}{
		{"nothing set keeps the file", nil, func(c config.Config) bool {
			return c.Display.FPS == 60 && c.Logging.Level == "info" && c.Logging.File == ""
		}},
		{"fps", []string{"fps"}, func(c config.Config) bool { return c.Display.FPS == 30 }},
		{"logging", []string{"log-level", "log-file"}, func(c config.Config) bool {
			return c.Logging.Level == "debug" && c.Logging.File == "/tmp/tennis.log"
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			applyOverrides(&cfg, func(name string) bool {
				for _, c := range tc.changed {
					if c == name {
						return true
					}
				}
				return false
			})
			if !tc.check(cfg) {
				t.Errorf("unexpected config after overrides: %+v", cfg)
			}
		})
	}
}

func TestPalette(t *testing.T) {
	colors := config.DefaultConfig().Display.Colors
	if got := palette(colors); got != tennis.DefaultPalette() {
		t.Errorf("palette() = %+v, expected the default palette", got)
	}

	colors.Ball = "orange"
	if got := palette(colors).Ball; got != core.ColorOrange {
		t.Errorf("ball color = %v, expected orange", got)
	}
}

func TestGameOptionsWireCollaborators(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	var bell bytes.Buffer
	clock := core.NewManualClock()
	game := tennis.New(tennis.WithClock(clock))
	game.Configure(gameOptions(config.DefaultConfig(), log.New(io.Discard), store, &bell)...)
	game.Reset(core.RuntimeConfig{Seed: 1})

	start := core.NewInputFrame()
	start.Set(core.ActionStart)
	game.Step(start)

	// Bounce off the top wall, then leave through the right wall
	s := game.Session()
	s.Balls[0].Position = core.V(400, 12)
	s.Motion = tennis.Motion{Angle: -math.Pi / 2, Speed: tennis.BaseBallSpeed}
	clock.Advance(16 * time.Millisecond)
	game.Step(core.NewInputFrame())

	s.Balls[0].Position = core.V(785, 300)
	s.Motion = tennis.Motion{Angle: 0, Speed: tennis.BaseBallSpeed}
	clock.Advance(16 * time.Millisecond)
	game.Step(core.NewInputFrame())

	if bell.String() != "\a" {
		t.Errorf("bell wrote %q, expected one cue", bell.String())
	}
	sum, err := store.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if sum.Rallies != 1 || sum.LeftPoints != 1 {
		t.Errorf("summary = %+v, expected one Blue point", sum)
	}

	var out bytes.Buffer
	printSummary(&out, store)
	for _, want := range []string{"Session summary:", "Rallies played:  1", "Blue 1 - 0 Red"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("summary output is missing %q:\n%s", want, out.String())
		}
	}
}

func TestGameOptionsWithoutBellOrLedger(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Audio.Bell = false

	opts := gameOptions(cfg, log.New(io.Discard), nil, io.Discard)
	if len(opts) != 2 {
		t.Errorf("expected only logger and palette options, got %d", len(opts))
	}
}

func TestPrintSummarySkipsEmptySession(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	var out bytes.Buffer
	printSummary(&out, store)
	if out.Len() != 0 {
		t.Errorf("expected no output for an empty session, got %q", out.String())
	}
}

func TestRunPlayReturnsErrors(t *testing.T) {
	err := runPlay(playCmd, []string{"squash"})
	if !errors.Is(err, registry.ErrUnknownGame) {
		t.Errorf("runPlay() = %v, expected ErrUnknownGame", err)
	}

	flagConfig = filepath.Join(t.TempDir(), "missing.yaml")
	t.Cleanup(func() { flagConfig = "" })
	if err := runPlay(playCmd, nil); err == nil || !strings.Contains(err.Error(), "missing.yaml") {
		t.Errorf("runPlay() = %v, expected a config error", err)
	}
}
