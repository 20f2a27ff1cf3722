package main

import (
	"net/http"

	"github.com/AdamBeresnev/food-bracket/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	if app.metrics != nil {
		r.Use(middleware.Metrics(app.metrics))
	}
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Handle("/metrics", app.metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/search", app.handleSearch)
		r.Post("/chat", app.handleChat)
		r.Get("/geocode", app.handleGeocode)
	})

	r.Group(func(r chi.Router) {
		r.Use(app.sessionManager.LoadAndSave)
		r.Use(middleware.LoadAuthenticatedUser(app.sessionManager, app.userStore))

		// Serve static files
		fileServer := http.FileServer(http.Dir("./static"))
		r.Handle("/static/*", http.StripPrefix("/static/", fileServer))

		r.Get("/login", app.handleLoginPage)
		r.Post("/auth/guest", app.handleGuestLogin)
		r.Get("/auth/{provider}", app.handleOAuthBegin)
		r.Get("/auth/{provider}/callback", app.handleOAuthCallback)
		r.Post("/logout", app.handleLogout)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)

			r.Get("/", app.handleIndex)
			r.Post("/tournaments", app.handleCreateTournament)
			r.Get("/tournaments/{id}", app.handleTournament)
			r.Get("/tournaments/{id}/match", app.handleCurrentMatch)
			r.Post("/tournaments/{id}/choose", app.handleChoose)
			r.Get("/tournaments/{id}/ranking", app.handleRanking)
		})
	})

	return r
}
