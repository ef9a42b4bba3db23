package main

import (
	"fmt"

	"github.com/btcsuite/btclog"
)

const (
	defaultItems      = 200000
	defaultWorkload   = "random"
	defaultDebugLevel = "info"
)

// config defines the configuration options for bench.
type config struct {
	Items      int    `short:"n" long:"items" description:"Number of elements to insert"`
	Workload   string `short:"w" long:"workload" description:"Insert pattern: append, prepend or random"`
	Seed       uint64 `long:"seed" description:"Seed for the insert positions (0 picks a random one)"`
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`
}

// validate checks the parsed options and returns the logging level to use.
func (cfg *config) validate() (btclog.Level, error) {
	if cfg.Items <= 0 {
		return 0, fmt.Errorf("items must be positive, got %d", cfg.Items)
	}
	switch cfg.Workload {
	case "append", "prepend", "random":
	default:
		return 0, fmt.Errorf("unknown workload %q", cfg.Workload)
	}
	level, ok := btclog.LevelFromString(cfg.DebugLevel)
	if !ok {
		return 0, fmt.Errorf("unknown debug level %q", cfg.DebugLevel)
	}
	return level, nil
}
