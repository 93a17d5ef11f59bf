package config

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/dmitrijs2005/hotelres/internal/flagx"
)

// parseFlags overlays Config fields from command-line flags (see package doc).
// Only the flags listed here are taken from os.Args; anything else is left
// for other flag sets. Invalid values panic.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-d", "-f", "-l", "-t", "-m", "-p", "-o", "-e"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDriver, "b", config.DatabaseDriver, "database driver (sqlite|pgx)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.DataDir, "f", config.DataDir, "data directory")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	hashTime := fs.Uint64("t", uint64(config.HashTime), "argon2id iterations")
	hashMemory := fs.Uint64("m", uint64(config.HashMemoryKiB), "argon2id memory (KiB)")
	hashThreads := fs.Uint64("p", uint64(config.HashThreads), "argon2id parallelism")
	connectTimeout := fs.Int("o", int(config.ConnectTimeout.Seconds()), "database connect timeout (in seconds)")

	fs.StringVar(&config.AdminEmail, "e", config.AdminEmail, "administrator email to seed")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	mustFit("t", *hashTime, math.MaxUint32)
	mustFit("m", *hashMemory, math.MaxUint32)
	mustFit("p", *hashThreads, math.MaxUint8)
	if *connectTimeout < 0 {
		panic(fmt.Errorf("flag -o: negative timeout %d", *connectTimeout))
	}

	config.HashTime = uint32(*hashTime)
	config.HashMemoryKiB = uint32(*hashMemory)
	config.HashThreads = uint8(*hashThreads)
	config.ConnectTimeout = time.Duration(*connectTimeout) * time.Second
}

// mustFit panics when a numeric flag does not fit its config field.
func mustFit(name string, v, limit uint64) {
	if v > limit {
		panic(fmt.Errorf("flag -%s: %d out of range [0, %d]", name, v, limit))
	}
}
