package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/hotelres/internal/flagx"
	"github.com/dmitrijs2005/hotelres/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Absent fields
// keep the values already present in Config.
type JsonConfig struct {
	DatabaseDriver *string         `json:"database_driver"`
	DatabaseDSN    *string         `json:"database_dsn"`
	DataDir        *string         `json:"data_dir"`
	LogLevel       *string         `json:"log_level"`
	HashTime       *uint32         `json:"hash_time"`
	HashMemoryKiB  *uint32         `json:"hash_memory_kib"`
	HashThreads    *uint8          `json:"hash_threads"`
	ConnectTimeout *timex.Duration `json:"connect_timeout"`
	AdminEmail     *string         `json:"admin_email"`
}

// parseJson overlays config with values from the JSON file named by
// flagx.JsonConfigFlags. Nothing happens when no file is configured; an
// unreadable or malformed file panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setIf(&config.DatabaseDriver, c.DatabaseDriver)
	setIf(&config.DatabaseDSN, c.DatabaseDSN)
	setIf(&config.DataDir, c.DataDir)
	setIf(&config.LogLevel, c.LogLevel)
	setIf(&config.HashTime, c.HashTime)
	setIf(&config.HashMemoryKiB, c.HashMemoryKiB)
	setIf(&config.HashThreads, c.HashThreads)
	setIf(&config.AdminEmail, c.AdminEmail)
	if c.ConnectTimeout != nil {
		config.ConnectTimeout = c.ConnectTimeout.Duration
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
