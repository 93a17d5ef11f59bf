package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	t.Setenv("HOTELRES_CONFIG", "")

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"database_driver": "pgx",
		"database_dsn":    "postgres://db/hotel",
		"data_dir":        "/srv/hotel",
		"log_level":       "error",
		"hash_time":       4,
		"hash_memory_kib": 4096,
		"hash_threads":    2,
		"connect_timeout": "2s",
		"admin_email":     "root@hotel.local",
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "pgx", cfg.DatabaseDriver)
		assert.Equal(t, "postgres://db/hotel", cfg.DatabaseDSN)
		assert.Equal(t, "/srv/hotel", cfg.DataDir)
		assert.Equal(t, "error", cfg.LogLevel)
		assert.Equal(t, uint32(4), cfg.HashTime)
		assert.Equal(t, uint32(4096), cfg.HashMemoryKiB)
		assert.Equal(t, uint8(2), cfg.HashThreads)
		assert.Equal(t, 2*time.Second, cfg.ConnectTimeout)
		assert.Equal(t, "root@hotel.local", cfg.AdminEmail)
	})

	t.Run("env var names the file", func(t *testing.T) {
		os.Args = []string{"testbin"}
		t.Setenv("HOTELRES_CONFIG", pathFlag)

		cfg := &Config{}
		parseJson(cfg)
		assert.Equal(t, "pgx", cfg.DatabaseDriver)
	})

	t.Run("partial file keeps other values", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{"log_level": "debug"})
		os.Args = []string{"testbin", "-c", partial}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, DriverSQLite, cfg.DatabaseDriver)
		assert.Equal(t, 5*time.Second, cfg.ConnectTimeout)
	})

	t.Run("no config and no flags → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{DatabaseDriver: "sqlite", DataDir: "keep", HashTime: 9}
		parseJson(cfg)

		assert.Equal(t, "sqlite", cfg.DatabaseDriver)
		assert.Equal(t, "keep", cfg.DataDir)
		assert.Equal(t, uint32(9), cfg.HashTime)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})

	t.Run("missing file → panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(dir, "absent.json")}
		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
