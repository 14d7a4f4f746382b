package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_GraphFlag(t *testing.T) {
	var out bytes.Buffer

	cfg, exit, err := Parse([]string{"-db", "wf.db", "-graph", "approve-request"}, &out)
	require.NoError(t, err)
	require.False(t, exit)
	assert.Equal(t, "approve-request", cfg.GraphName)
	assert.Equal(t, "wf.db", cfg.DSN)
	assert.Equal(t, -1, cfg.Version)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestParse_PositionalGraphName(t *testing.T) {
	var out bytes.Buffer

	cfg, exit, err := Parse([]string{"-db", "wf.db", "approve-request"}, &out)
	require.NoError(t, err)
	require.False(t, exit)
	assert.Equal(t, "approve-request", cfg.GraphName)
}

func TestParse_ShorthandWinsOverPositional(t *testing.T) {
	var out bytes.Buffer

	cfg, _, err := Parse([]string{"-db", "wf.db", "-g", "short", "positional"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "short", cfg.GraphName)
}

func TestParse_VersionAndToggles(t *testing.T) {
	var out bytes.Buffer

	cfg, _, err := Parse([]string{"-db", "wf.db", "-version", "2", "-versions", "-lint-guards", "review"}, &out)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Version)
	assert.True(t, cfg.ListVersions)
	assert.True(t, cfg.LintGuards)
}

func TestParse_NoArgsPrintsUsage(t *testing.T) {
	var out bytes.Buffer

	cfg, exit, err := Parse(nil, &out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_InvalidLogLevel(t *testing.T) {
	var out bytes.Buffer

	_, _, err := Parse([]string{"-db", "wf.db", "-log-level", "loud", "review"}, &out)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestParse_InvalidLogFormat(t *testing.T) {
	var out bytes.Buffer

	_, _, err := Parse([]string{"-db", "wf.db", "-log-format", "xml", "review"}, &out)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestParse_MissingDatabase(t *testing.T) {
	var out bytes.Buffer

	// A graph name without -db or -config cannot be loaded from anywhere.
	_, _, err := Parse([]string{"review"}, &out)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestParse_ProfileOnly(t *testing.T) {
	var out bytes.Buffer

	cfg, exit, err := Parse([]string{"-config", "profile.hcl"}, &out)
	require.NoError(t, err)
	require.False(t, exit)
	assert.Equal(t, "profile.hcl", cfg.ProfilePath)
	assert.Equal(t, "", cfg.GraphName)
}
