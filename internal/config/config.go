package config

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/flowdefgo/internal/ctxlog"
)

// DefaultDriver is used when a profile's database block omits the driver.
const DefaultDriver = "sqlite"

// Database names the relational store holding the workflow definitions.
type Database struct {
	// Driver is the database/sql driver name.
	Driver string `hcl:"driver,optional"`
	// DSN is the driver-specific data source name.
	DSN string `hcl:"dsn"`
}

// Defaults pre-selects the graph a bare CLI invocation loads.
type Defaults struct {
	// Graph is the workflow name to load when no -graph flag is given.
	Graph string `hcl:"graph,optional"`
	// Version pins an exact version. Nil means latest.
	Version *int `hcl:"version,optional"`
}

// Profile is the top-level structure of a profile file.
type Profile struct {
	Database *Database `hcl:"database,block"`
	Defaults *Defaults `hcl:"defaults,block"`
}

// Load parses and decodes one profile file.
func Load(ctx context.Context, path string) (*Profile, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading profile file.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse profile %s: %w", path, diags)
	}

	var profile Profile
	if diags := gohcl.DecodeBody(file.Body, nil, &profile); diags.HasErrors() {
		return nil, fmt.Errorf("decode profile %s: %w", path, diags)
	}

	if profile.Database != nil && profile.Database.Driver == "" {
		profile.Database.Driver = DefaultDriver
	}

	logger.Debug("Profile loaded.", "path", path, "has_database", profile.Database != nil, "has_defaults", profile.Defaults != nil)
	return &profile, nil
}
