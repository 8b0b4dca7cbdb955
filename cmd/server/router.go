package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/peanuts/anki-api/internal/api"
	apiMiddleware "github.com/peanuts/anki-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordHasher,
		app.passwordHasher,
		app.logger,
	)
	deckHandler := api.NewDeckHandler(app.deckService, app.logger)
	cardHandler := api.NewCardHandler(app.cardService, app.logger)
	studyHandler := api.NewStudyHandler(app.studyService, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// Deck management endpoints
			r.Get("/decks", deckHandler.List)
			r.Post("/decks", deckHandler.Create)
			r.Get("/decks/{id}", deckHandler.Get)
			r.Put("/decks/{id}", deckHandler.Update)
			r.Delete("/decks/{id}", deckHandler.Delete)

			// Card management endpoints
			r.Get("/decks/{id}/cards", cardHandler.List)
			r.Post("/decks/{id}/cards", cardHandler.Create)
			r.Get("/cards/{id}", cardHandler.Get)
			r.Put("/cards/{id}", cardHandler.Update)
			r.Delete("/cards/{id}", cardHandler.Delete)

			// Study endpoints
			r.Post("/study/decks/{deckId}/start", studyHandler.StartSession)
			r.Post("/study/cards/{cardId}/review", studyHandler.SubmitReview)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
