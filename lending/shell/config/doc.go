// Package config provides configuration helpers for running the lending engine:
// environment based settings, slog logger construction and yaml seed data
// for holders and catalog items.
//
// This package is part of the shell (infrastructure) layer.
package config
