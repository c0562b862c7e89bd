package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

var ErrUnknownLogFormat = errors.New("unknown log format")

// NewLogger builds a slog logger writing to w according to the configured level and format.
func NewLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(cfg.LogFormat) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLogFormat, cfg.LogFormat)
	}
}
