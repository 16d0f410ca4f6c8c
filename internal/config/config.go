// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings.
// Any debug level above 0 enables debug logging, which is required
// for the interpreter trace output.
func CreateLogger(debugLevel int, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debugLevel > 0 {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
