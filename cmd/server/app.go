package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/peanuts/anki-api/internal/config"
	"github.com/peanuts/anki-api/internal/domain/srs"
	"github.com/peanuts/anki-api/internal/platform/postgres"
	"github.com/peanuts/anki-api/internal/service"
	"github.com/peanuts/anki-api/internal/service/auth"
	"github.com/peanuts/anki-api/internal/service/study"
	"github.com/peanuts/anki-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore store.UserStore
	deckStore store.DeckStore
	cardStore store.CardStore

	// Service interfaces
	jwtService     auth.JWTService
	passwordHasher *auth.BcryptHasher
	srsService     srs.Service
	deckService    *service.DeckService
	cardService    *service.CardService
	studyService   study.StudyService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordHasher = auth.NewBcryptHasher()

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.deckStore = postgres.NewPostgresDeckStore(db, logger)
	app.cardStore = postgres.NewPostgresCardStore(db, logger)

	app.srsService = srs.NewDefaultService()

	app.deckService = service.NewDeckService(app.deckStore, logger)
	app.cardService = service.NewCardService(app.cardStore, app.deckStore, logger)
	app.studyService = study.NewStudyService(
		db,
		app.deckStore,
		app.cardStore,
		app.srsService,
		logger,
	)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
