package config

import (
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/hotelres/internal/cryptox"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"

	sqliteFileName = "hotel.db"
)

// Config holds runtime settings for the hotelres application.
type Config struct {
	DatabaseDriver string
	DatabaseDSN    string
	DataDir        string
	LogLevel       string
	HashTime       uint32
	HashMemoryKiB  uint32
	HashThreads    uint8
	ConnectTimeout time.Duration
	AdminEmail     string
}

// LoadDefaults populates c with defaults suitable for a single-user desktop
// install backed by SQLite.
func (c *Config) LoadDefaults() {
	p := cryptox.DefaultParams()

	c.DatabaseDriver = DriverSQLite
	c.DatabaseDSN = ""
	c.DataDir = "data"
	c.LogLevel = "info"
	c.HashTime = p.Time
	c.HashMemoryKiB = p.MemoryKiB
	c.HashThreads = p.Threads
	c.ConnectTimeout = 5 * time.Second
	c.AdminEmail = ""
}

// LoadConfig builds a Config from defaults, then the optional JSON file,
// then command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

// HashParams converts the hashing settings into cryptox parameters.
func (c *Config) HashParams() cryptox.Params {
	return cryptox.Params{
		Time:      c.HashTime,
		MemoryKiB: c.HashMemoryKiB,
		Threads:   c.HashThreads,
	}
}

// ResolveDSN returns the DSN to open. For sqlite with no explicit DSN the
// database file lives in dataDir.
func (c *Config) ResolveDSN(dataDir string) string {
	if c.DatabaseDSN != "" || c.DatabaseDriver != DriverSQLite {
		return c.DatabaseDSN
	}
	return filepath.Join(dataDir, sqliteFileName)
}
