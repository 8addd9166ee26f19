// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package observability builds the process-wide zerolog logger.
package observability

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/moleculab/chemscout/pkg/types"
)

// NewLogger creates a zerolog logger from configuration. Format
// "console" gives human-readable output; anything else is JSON.
func NewLogger(cfg types.LoggingConfig) zerolog.Logger {
	var output io.Writer = os.Stderr
	if strings.EqualFold(cfg.Format, "console") || strings.EqualFold(cfg.Format, "pretty") {
		output = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	level := parseLevel(cfg.Level)
	return zerolog.New(output).With().Timestamp().Logger().Level(level)
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	default:
		return zerolog.InfoLevel
	}
}
