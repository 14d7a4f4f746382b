package timer

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/vk/flowdefgo/internal/registry"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE wf_timer (
	node_id INTEGER PRIMARY KEY,
	delay   TEXT NOT NULL
);`)
	require.NoError(t, err)
	return db
}

func TestLoadExtra(t *testing.T) {
	db := openTestDB(t)
	_, err := db.Exec(`INSERT INTO wf_timer (node_id, delay) VALUES (3, '5m')`)
	require.NoError(t, err)

	extra, err := LoadExtra(context.Background(), db, 3)
	require.NoError(t, err)
	assert.Equal(t, Extra{Delay: "5m"}, extra)
	assert.Equal(t, "timer", extra.ExtraType())
}

func TestLoadExtra_MissingRow(t *testing.T) {
	db := openTestDB(t)

	extra, err := LoadExtra(context.Background(), db, 42)
	require.Error(t, err)
	assert.Nil(t, extra)
	assert.Contains(t, err.Error(), "timer node 42")
}

func TestModule_Register(t *testing.T) {
	reg := registry.New()
	(&Module{}).Register(reg)
	assert.Equal(t, []string{"timer"}, reg.Types())
}
