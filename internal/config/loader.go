package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tennis/internal/core"
)

// Sources reported by Load when no file was used.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Load loads the tennis configuration.
// Search order: customPath -> ~/.tennis/config.yaml -> ./configs/tennis.yaml -> embedded default.
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes. The second return value names the file that was used, or
// SourceEmbedded / SourceBuiltin.
func Load(customPath string) (Config, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then the local configs directory.
	// Unreadable or malformed files are skipped.
	for _, path := range []string{userConfigPath(), filepath.Join("configs", "tennis.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := Parse(data)
		if errors.Is(err, errDecode) {
			continue
		}
		if err != nil {
			return Config{}, "", fmt.Errorf("invalid config %s: %w", path, err)
		}
		return cfg, path, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

var errDecode = errors.New("malformed yaml")

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", errDecode, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// Validate checks ranges, color names, key bindings and the log level.
// All problems are reported together.
func (c Config) Validate() error {
	var errs []error

	if c.Display.FPS < 1 || c.Display.FPS > 240 {
		errs = append(errs, fmt.Errorf("display.fps must be between 1 and 240, got %d", c.Display.FPS))
	}

	colors := []struct {
		key, name string
	}{
		{"left_paddle", c.Display.Colors.LeftPaddle},
		{"right_paddle", c.Display.Colors.RightPaddle},
		{"ball", c.Display.Colors.Ball},
		{"text", c.Display.Colors.Text},
		{"net", c.Display.Colors.Net},
		{"logo", c.Display.Colors.Logo},
	}
	for _, col := range colors {
		if _, ok := core.ParseColor(col.name); !ok {
			errs = append(errs, fmt.Errorf("display.colors.%s: unknown color %q", col.key, col.name))
		}
	}

	if c.Controls.HoldWindowMS < 1 || c.Controls.HoldWindowMS > 2000 {
		errs = append(errs, fmt.Errorf("controls.hold_window_ms must be between 1 and 2000, got %d", c.Controls.HoldWindowMS))
	}
	if c.Controls.RepeatDelayMS < c.Controls.HoldWindowMS || c.Controls.RepeatDelayMS > 3000 {
		errs = append(errs, fmt.Errorf("controls.repeat_delay_ms must be between hold_window_ms and 3000, got %d", c.Controls.RepeatDelayMS))
	}

	bindings := []struct {
		action string
		keys   []string
		need   bool
	}{
		{"up", c.Controls.Up, true},
		{"down", c.Controls.Down, true},
		{"start", c.Controls.Start, true},
		{"quit", c.Controls.Quit, true},
		{"rallies", c.Controls.Rallies, false},
	}
	owner := make(map[string]string)
	for _, b := range bindings {
		if b.need && len(b.keys) == 0 {
			errs = append(errs, fmt.Errorf("controls.%s: at least one key is required", b.action))
		}
		for _, k := range b.keys {
			if prev, ok := owner[k]; ok {
				errs = append(errs, fmt.Errorf("controls.%s: key %q is already bound to %s", b.action, k, prev))
				continue
			}
			owner[k] = b.action
		}
	}

	if _, err := log.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	if c.Logging.MaxSizeMB < 0 || c.Logging.MaxBackups < 0 || c.Logging.MaxAgeDays < 0 {
		errs = append(errs, errors.New("logging: rotation limits must not be negative"))
	}

	return errors.Join(errs...)
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tennis", "config.yaml")
}
