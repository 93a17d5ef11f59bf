// Package config loads runtime configuration for hotelres.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c / -config, or HOTELRES_CONFIG.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-b string   database driver: "sqlite" or "pgx"
//	-d string   database DSN (empty with sqlite means <data dir>/hotel.db)
//	-f string   data directory for the local database
//	-l string   log level: debug, info, warn, error
//	-t int      argon2id iterations
//	-m int      argon2id memory, KiB
//	-p int      argon2id parallelism
//	-o int      database connect timeout, seconds
//	-e string   administrator email seeded on first start
//
// # JSON schema
//
//	{
//	  "database_driver": "sqlite",
//	  "database_dsn": "",
//	  "data_dir": "data",
//	  "log_level": "info",
//	  "hash_time": 3,
//	  "hash_memory_kib": 65536,
//	  "hash_threads": 1,
//	  "connect_timeout": "5s",
//	  "admin_email": "admin@hotel.local"
//	}
package config
