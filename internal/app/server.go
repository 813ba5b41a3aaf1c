package app

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/saradorri/safecasino/internal/domain"
	"github.com/saradorri/safecasino/internal/http"
	"github.com/saradorri/safecasino/internal/http/handlers"
	"github.com/saradorri/safecasino/internal/http/middleware"
	"github.com/saradorri/safecasino/internal/infrastructure/auth"
	"github.com/saradorri/safecasino/internal/infrastructure/logger"
	"github.com/saradorri/safecasino/internal/infrastructure/seeder"
)

// InitHTTPServer initializes the HTTP server with all dependencies
func (a *application) InitHTTPServer(
	jwtService auth.JWTService,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	gameHandler *handlers.GameHandler,
	reviewHandler *handlers.ReviewHandler,
	adminHandler *handlers.AdminHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
) *http.Server {
	port := a.config.Server.Port
	if port == "" {
		port = "8080" // default port
	}

	return http.NewServer(jwtService, authHandler, userHandler, gameHandler, reviewHandler, adminHandler, errorHandler, log, port)
}

// RunSeeder bootstraps roles, the initial admin and the demo catalog
func (a *application) RunSeeder(lc fx.Lifecycle, s *seeder.Seeder, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := s.SeedAll(); err != nil {
				log.Error("Seeding failed", zap.Error(err))
				return err
			}
			return nil
		},
	})
}

// RunOutboxProcessor starts the notification delivery loop
func (a *application) RunOutboxProcessor(lc fx.Lifecycle, p domain.OutboxProcessor) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.StartBackgroundProcessing()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.StopBackgroundProcessing()
			return nil
		},
	})
}

// RunHTTPServer starts the HTTP listener
func (a *application) RunHTTPServer(lc fx.Lifecycle, server *http.Server, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := server.Start(); err != nil {
					log.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			log.Info("HTTP server listening", zap.String("port", a.config.Server.Port))
			return nil
		},
	})
}
