package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/hotelres/internal/cryptox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, DriverSQLite, c.DatabaseDriver)
	assert.Equal(t, "", c.DatabaseDSN)
	assert.Equal(t, "data", c.DataDir)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, uint32(3), c.HashTime)
	assert.Equal(t, uint32(64*1024), c.HashMemoryKiB)
	assert.Equal(t, uint8(1), c.HashThreads)
	assert.Equal(t, 5*time.Second, c.ConnectTimeout)
	assert.Equal(t, "", c.AdminEmail)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}
	t.Setenv("HOTELRES_CONFIG", "")

	c := LoadConfig()
	require.NotNil(t, c, "LoadConfig must not return nil")

	var want Config
	want.LoadDefaults()
	assert.Equal(t, want, *c)
}

func TestHashParams(t *testing.T) {
	c := Config{HashTime: 2, HashMemoryKiB: 2048, HashThreads: 4}
	assert.Equal(t, cryptox.Params{Time: 2, MemoryKiB: 2048, Threads: 4}, c.HashParams())
}

func TestResolveDSN(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{name: "sqlite default file", cfg: Config{DatabaseDriver: DriverSQLite}, want: filepath.Join(dir, "hotel.db")},
		{name: "sqlite explicit dsn", cfg: Config{DatabaseDriver: DriverSQLite, DatabaseDSN: ":memory:"}, want: ":memory:"},
		{name: "postgres dsn untouched", cfg: Config{DatabaseDriver: DriverPostgres, DatabaseDSN: "postgres://h/db"}, want: "postgres://h/db"},
		{name: "postgres empty stays empty", cfg: Config{DatabaseDriver: DriverPostgres}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.ResolveDSN(dir))
		})
	}
}
