package config

import (
	_ "embed"
)

//go:embed defaults/tennis.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It mirrors defaults/tennis.yaml and is used if the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			FPS: 60,
			Colors: ColorsConfig{
				LeftPaddle:  "blue",
				RightPaddle: "red",
				Ball:        "bright_white",
				Text:        "white",
				Net:         "gray",
				Logo:        "bright_green",
			},
		},
		Controls: ControlsConfig{
			Up:            []string{"w", "up"},
			Down:          []string{"s", "down"},
			Start:         []string{" "},
			Quit:          []string{"esc", "ctrl+c", "q"},
			Rallies:       []string{"tab"},
			RepeatDelayMS: 700,
			HoldWindowMS:  200,
		},
		Audio: AudioConfig{
			Bell: true,
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
