package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ProfilePath points at an optional HCL profile file.
	ProfilePath string
	// Driver is the database/sql driver name. Empty falls back to the
	// profile's database block, then to the sqlite default.
	Driver string
	// DSN is the data source name of the workflow database.
	DSN string
	// GraphName is the workflow name to load.
	GraphName string
	// Version pins an exact graph version. Negative means latest.
	Version int
	// ListVersions prints all stored versions of the graph name.
	ListVersions bool
	// LintGuards checks every guard expression after loading.
	LintGuards bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates what can be validated before the profile is merged.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.DSN == "" && cfg.ProfilePath == "" {
		return nil, errors.New("a workflow database (-db) or a profile file (-config) is required")
	}
	return &cfg, nil
}
