// Package logging builds the application logger.
//
// The terminal belongs to the game while it runs, so log output goes to a
// size-rotated file or nowhere at all.
package logging

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vovakirdan/tui-tennis/internal/config"
)

// Prefix is printed in front of every log line.
const Prefix = "tennis"

// New creates a logger for the given settings. The returned closer releases
// the log file and must be called on shutdown; it is a no-op when logging is
// disabled.
func New(cfg config.LoggingConfig) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}

	var (
		out    io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)
	if cfg.File != "" {
		rotated := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
		out, closer = rotated, rotated
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          Prefix,
		Level:           level,
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
