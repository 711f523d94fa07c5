package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
}

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded defaults differ from DefaultConfig():\n%+v\n%+v", cfg, DefaultConfig())
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig() is invalid: %v", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	tests := []struct {
		name        string
		user        string // ~/.tennis/config.yaml content, empty for none
		local       string // ./configs/tennis.yaml content, empty for none
		expectedFPS int
		source      func(home string) string
	}{
		{
			name:        "embedded default",
			expectedFPS: 60,
			source:      func(string) string { return SourceEmbedded },
		},
		{
			name:        "local configs directory",
			local:       "display:\n  fps: 30\n",
			expectedFPS: 30,
			source:      func(string) string { return filepath.Join("configs", "tennis.yaml") },
		},
		{
			name:        "user file wins over local",
			user:        "display:\n  fps: 90\n",
			local:       "display:\n  fps: 30\n",
			expectedFPS: 90,
			source:      func(home string) string { return filepath.Join(home, ".tennis", "config.yaml") },
		},
		{
			name:        "malformed user file is skipped",
			user:        "display: [unclosed\n",
			local:       "display:\n  fps: 45\n",
			expectedFPS: 45,
			source:      func(string) string { return filepath.Join("configs", "tennis.yaml") },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			home := t.TempDir()
			work := t.TempDir()
			t.Setenv("HOME", home)
			t.Chdir(work)

			if tc.user != "" {
				writeFile(t, filepath.Join(home, ".tennis", "config.yaml"), tc.user)
			}
			if tc.local != "" {
				writeFile(t, filepath.Join(work, "configs", "tennis.yaml"), tc.local)
			}

			cfg, source, err := Load("")
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if cfg.Display.FPS != tc.expectedFPS {
				t.Errorf("fps = %d, expected %d", cfg.Display.FPS, tc.expectedFPS)
			}
			if expected := tc.source(home); source != expected {
				t.Errorf("source = %q, expected %q", source, expected)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "audio:\n  bell: false\ncontrols:\n  hold_window_ms: 120\n")

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Audio.Bell {
		t.Error("bell should be disabled")
	}
	if cfg.Controls.HoldWindow() != 120*time.Millisecond {
		t.Errorf("hold window = %v", cfg.Controls.HoldWindow())
	}
	if cfg.Controls.RepeatDelay() != 700*time.Millisecond {
		t.Errorf("repeat delay = %v, expected the 700ms default", cfg.Controls.RepeatDelay())
	}
	// Untouched sections keep their defaults
	if !reflect.DeepEqual(cfg.Display, DefaultConfig().Display) {
		t.Errorf("display = %+v, expected defaults", cfg.Display)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected an error for a missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "display:\n  fps: 0\n")
	_, _, err := Load(bad)
	if err == nil || !strings.Contains(err.Error(), "display.fps") {
		t.Errorf("Load() error = %v, expected a display.fps complaint", err)
	}
}

func TestLoadInvalidUserFileIsReported(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	writeFile(t, filepath.Join(home, ".tennis", "config.yaml"), "display:\n  colors:\n    ball: chartreuse\n")

	if _, _, err := Load(""); err == nil {
		t.Error("expected an error for an invalid (but well-formed) user config")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		message string
	}{
		{"fps too high", func(c *Config) { c.Display.FPS = 500 }, "display.fps"},
		{"unknown color", func(c *Config) { c.Display.Colors.Net = "plaid" }, "display.colors.net"},
		{"hold window", func(c *Config) { c.Controls.HoldWindowMS = 0 }, "hold_window_ms"},
		{"repeat delay below hold window", func(c *Config) { c.Controls.RepeatDelayMS = 100 }, "repeat_delay_ms"},
		{"repeat delay too long", func(c *Config) { c.Controls.RepeatDelayMS = 5000 }, "repeat_delay_ms"},
		{"missing up keys", func(c *Config) { c.Controls.Up = nil }, "controls.up"},
		{"duplicate key", func(c *Config) { c.Controls.Quit = append(c.Controls.Quit, "w") }, `key "w" is already bound to up`},
		{"bad level", func(c *Config) { c.Logging.Level = "chatty" }, "logging.level"},
		{"negative rotation", func(c *Config) { c.Logging.MaxBackups = -1 }, "rotation"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tc.message) {
				t.Errorf("error = %q, expected it to mention %q", err, tc.message)
			}
		})
	}
}

func TestRalliesKeyIsOptional(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Controls.Rallies = nil
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, expected no error", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Display.FPS = 75
	cfg.Logging.File = "/tmp/tennis.log"

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Errorf("round trip changed the config:\n%+v\n%+v", got, cfg)
	}
}
