// Package app provides logger initialization.
package app

import (
	"github.com/guttosm/pos-service/config"
	"github.com/guttosm/pos-service/internal/logger"
)

// InitializeLogger configures the global logger from the server settings.
func InitializeLogger(cfg config.ServerConfig) {
	level := cfg.LogLevel
	if level == "" {
		level = "info"
	}
	logger.Init(level, cfg.LogPretty)
}
