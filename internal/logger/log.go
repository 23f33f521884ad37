// Package logger sets up structured logging and crash recording for sitelog.
package logger

import (
	"io"
	"log/slog"
	"strings"

	"github.com/josephgoksu/sitelog/types"
	"gopkg.in/lumberjack.v2"
)

// Setup installs the default slog logger. Records go to the rotated log file
// when one is configured and to console when verbose is set. With neither,
// only warnings and errors reach the console.
func Setup(cfg types.LogConfig, verbose bool, console io.Writer) *slog.Logger {
	level := ParseLevel(cfg.Level)

	var writers []io.Writer
	if cfg.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			LocalTime:  true,
		})
	}
	if verbose {
		writers = append(writers, console)
		level = slog.LevelDebug
	}
	if len(writers) == 0 {
		writers = append(writers, console)
		level = max(level, slog.LevelWarn)
	}

	h := slog.NewTextHandler(io.MultiWriter(writers...), &slog.HandlerOptions{Level: level})
	l := slog.New(h)
	slog.SetDefault(l)
	l.Debug("logger initialized", "level", level.String(), "file", cfg.File)
	return l
}

// ParseLevel maps a config value to a slog level. Unknown values mean info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
