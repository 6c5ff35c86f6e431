// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Defaults live in New; Load layers file and env on top.
// - External errors are wrapped via this package's sentinel kinds.
package config

import (
	"github.com/okian/scoreportal/internal/domain/chart"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DBPath locates the SQLite scores database file.
	DBPath string `koanf:"db_path"`

	// Freeze starts the service with submissions accepted but discarded,
	// keeping the scoreboard static near the end of a competition.
	Freeze bool `koanf:"freeze"`

	// BorderWidth is the chart dataset border width baked into responses.
	BorderWidth int `koanf:"border_width"`

	// QueryTimeoutMS bounds each event store query; 0 disables the bound.
	QueryTimeoutMS int `koanf:"query_timeout_ms"`

	// TeamNames maps team identifiers to display names. Teams absent from
	// the map render without a configured label.
	TeamNames map[string]string `koanf:"team_names"`

	// Palette overrides the default chart color cycle.
	Palette []chart.Color `koanf:"palette"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":8080",
		DBPath:         "scores.db",
		Freeze:         false,
		BorderWidth:    1,
		QueryTimeoutMS: 10_000,
		TeamNames:      map[string]string{},
		Palette:        chart.DefaultPalette(),
	}
}
