package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glacierdb/glacier/table"
)

func TestDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "glacier.db", cfg.Catalog.Path)
	assert.Equal(t, "default", cfg.Catalog.Table)
	assert.Equal(t, table.MainBranch, cfg.Catalog.DefaultBranch)
	assert.False(t, cfg.Log.JSON)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glacier.toml")
	content := `
[catalog]
path = "/var/lib/glacier/catalog.db"
table = "events"

[log]
json = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/glacier/catalog.db", cfg.Catalog.Path)
	assert.Equal(t, "events", cfg.Catalog.Table)
	assert.True(t, cfg.Log.JSON)
	// Unset keys fall back to defaults
	assert.Equal(t, table.MainBranch, cfg.Catalog.DefaultBranch)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glacier.toml")

	cfg := &Config{
		Catalog: CatalogConfig{Path: "cat.db", Table: "metrics", DefaultBranch: table.MainBranch},
		Log:     LogConfig{JSON: true},
	}
	require.NoError(t, Save(cfg, path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
