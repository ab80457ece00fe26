package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/tours-api/internal/config"
	"github.com/phrazzld/tours-api/internal/platform/postgres"
	"github.com/phrazzld/tours-api/internal/platform/tracing"
	"github.com/phrazzld/tours-api/internal/service"
	"github.com/phrazzld/tours-api/internal/service/auth"
)

const shutdownTimeout = 10 * time.Second

// application holds the shared dependencies of the server and releases them
// on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	jwtService     auth.JWTService
	accountService service.AccountService
	tourService    service.TourQueryService

	shutdownTracing tracing.ShutdownFunc
}

// newApplication wires stores, credential handling and the query engine on
// top of an established database connection.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.shutdownTracing, err = tracing.Init(ctx, logger, cfg.Telemetry)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}

	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes,
		"issuer", cfg.Auth.Issuer)

	hasher, err := auth.NewBcryptHasher(cfg.Auth.BCryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize password hasher: %w", err)
	}

	accountStore := postgres.NewPostgresAccountStore(db, logger)
	supplierStore := postgres.NewPostgresSupplierStore(db, logger)
	tourStore := postgres.NewPostgresTourStore(db, logger)

	app.accountService = service.NewAccountService(
		accountStore,
		supplierStore,
		hasher,
		auth.PasswordPolicy{MinLength: cfg.Auth.PasswordMinLength},
		app.jwtService,
		db,
		logger,
	)
	app.tourService = service.NewTourQueryService(tourStore, logger)

	logger.Info("application initialized")
	return app, nil
}

// Run serves HTTP until ctx is cancelled, then releases all resources.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func (app *application) cleanup() {
	if app.shutdownTracing != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		if err := app.shutdownTracing(ctx); err != nil {
			app.logger.Error("failed to flush traces", "error", err)
		}
		cancel()
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}

	app.logger.Info("application shutdown completed")
}
