package app

import (
	"github.com/saradorri/safecasino/internal/config"
	"github.com/saradorri/safecasino/internal/infrastructure/logger"
)

// InitLogger creates a new logger instance
func (a *application) InitLogger() *logger.Logger {
	return logger.NewLogger(config.GetEnvironment(), a.config.Log.Level)
}
