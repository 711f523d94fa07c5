// Package config provides YAML-based configuration loading for the tennis
// terminal front end: display, controls, audio and logging.
//
// Game rules (board size, speeds, winning score) are fixed and deliberately
// absent from the file.
package config

import "time"

// Config is the complete user configuration.
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Controls ControlsConfig `yaml:"controls"`
	Audio    AudioConfig    `yaml:"audio"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DisplayConfig defines frame rate and colors.
type DisplayConfig struct {
	FPS    int          `yaml:"fps"`
	Colors ColorsConfig `yaml:"colors"`
}

// ColorsConfig names the color of each board element (e.g. "blue", "bright_white").
type ColorsConfig struct {
	LeftPaddle  string `yaml:"left_paddle"`
	RightPaddle string `yaml:"right_paddle"`
	Ball        string `yaml:"ball"`
	Text        string `yaml:"text"`
	Net         string `yaml:"net"`
	Logo        string `yaml:"logo"`
}

// ControlsConfig lists the keys bound to each action, in Bubble Tea notation
// ("up", "w", " ", "esc", "ctrl+c").
type ControlsConfig struct {
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Start   []string `yaml:"start"`
	Quit    []string `yaml:"quit"`
	Rallies []string `yaml:"rallies"` // Toggles the rally log while idle

	// Terminals report no key releases. A first press counts as held for
	// RepeatDelayMS, which must cover the terminal's auto-repeat delay; after
	// that a movement key stays held for HoldWindowMS past each auto-repeat.
	RepeatDelayMS int `yaml:"repeat_delay_ms"`
	HoldWindowMS  int `yaml:"hold_window_ms"`
}

// RepeatDelay returns the first-press window as a duration.
func (c ControlsConfig) RepeatDelay() time.Duration {
	return time.Duration(c.RepeatDelayMS) * time.Millisecond
}

// HoldWindow returns the hold window as a duration.
func (c ControlsConfig) HoldWindow() time.Duration {
	return time.Duration(c.HoldWindowMS) * time.Millisecond
}

// AudioConfig controls the collision cue.
type AudioConfig struct {
	Bell bool `yaml:"bell"` // Ring the terminal bell on every bounce and hit
}

// LoggingConfig defines the log level and the optional rotated log file.
// Logs never go to the terminal while the game owns it.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"` // Empty disables logging
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}
