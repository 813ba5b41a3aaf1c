package app

import (
	"go.uber.org/zap"

	"github.com/saradorri/safecasino/internal/infrastructure/cache"
	"github.com/saradorri/safecasino/internal/infrastructure/logger"
)

// InitCache connects the catalog read cache. A missing redis is not
// fatal; the catalog falls back to direct queries.
func (a *application) InitCache(log *logger.Logger) *cache.Cache {
	c, err := cache.New(a.config.Redis)
	if err != nil {
		log.Warn("Cache unavailable, catalog reads will hit the database", zap.Error(err))
		return nil
	}
	return c
}
