package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeProfile writes an HCL profile into a temp dir and returns its path.
func writeProfile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_FullProfile(t *testing.T) {
	path := writeProfile(t, `
database {
  driver = "sqlite"
  dsn    = "definitions.db"
}

defaults {
  graph   = "approve-request"
  version = 2
}
`)

	profile, err := Load(context.Background(), path)
	require.NoError(t, err)

	require.NotNil(t, profile.Database)
	assert.Equal(t, "sqlite", profile.Database.Driver)
	assert.Equal(t, "definitions.db", profile.Database.DSN)

	require.NotNil(t, profile.Defaults)
	assert.Equal(t, "approve-request", profile.Defaults.Graph)
	require.NotNil(t, profile.Defaults.Version)
	assert.Equal(t, 2, *profile.Defaults.Version)
}

func TestLoad_DriverDefaulted(t *testing.T) {
	path := writeProfile(t, `
database {
  dsn = "definitions.db"
}
`)

	profile, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, DefaultDriver, profile.Database.Driver)
	assert.Nil(t, profile.Defaults)
}

func TestLoad_EmptyProfile(t *testing.T) {
	path := writeProfile(t, "")

	profile, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Nil(t, profile.Database)
	assert.Nil(t, profile.Defaults)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
	assert.Error(t, err)
}

func TestLoad_MalformedProfile(t *testing.T) {
	path := writeProfile(t, `database { dsn = `)

	_, err := Load(context.Background(), path)
	assert.Error(t, err)
}

func TestLoad_MissingRequiredDSN(t *testing.T) {
	path := writeProfile(t, `
database {
  driver = "sqlite"
}
`)

	_, err := Load(context.Background(), path)
	assert.Error(t, err, "dsn is required inside a database block")
}
