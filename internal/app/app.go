package app

import (
	"context"
	"flag"
	"fmt"
	"log"

	"go.uber.org/fx"

	"github.com/saradorri/safecasino/internal/config"
)

// Application provides application level setup
type Application interface {
	Setup()
	GetContext() context.Context
}

// application represents context and configure file
type application struct {
	ctx    context.Context
	config *config.Config
}

// NewApplication creates a new application
func NewApplication(ctx context.Context) Application {
	return &application{ctx: ctx}
}

// GetContext returns application context
func (a *application) GetContext() context.Context {
	return a.ctx
}

// Setup creates a new fx application with all modules
func (a *application) Setup() {
	fmt.Println("[x] Starting SafeCasino Service...")

	path := flag.String("e", "./config", "env file directory")
	flag.Parse()

	err := a.setupViper(*path)
	if err != nil {
		log.Panic(err.Error())
	}

	app := fx.New(
		fx.Provide(
			a.InitLogger,
			a.InitDatabase,
			a.InitCache,
			a.InitJWTService,
			a.InitLockManager,
			a.InitEmailService,
			a.InitRepository,
			a.InitAccountUseCase,
			a.InitWalletUseCase,
			a.InitReviewUseCase,
			a.InitCatalogUseCase,
			a.InitOutboxProcessor,
			a.InitSeeder,
			a.InitAuthHandler,
			a.InitUserHandler,
			a.InitGameHandler,
			a.InitReviewHandler,
			a.InitAdminHandler,
			a.InitErrorHandler,
			a.InitHTTPServer,
		),
		fx.Invoke(
			a.RunSeeder,
			a.RunOutboxProcessor,
			a.RunHTTPServer,
		),
	)

	app.Run()
}
