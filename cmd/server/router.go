package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/xanderson/homebank-api/internal/api"
	apiMiddleware "github.com/xanderson/homebank-api/internal/api/middleware"
	"github.com/xanderson/homebank-api/internal/platform/metrics"
	"github.com/xanderson/homebank-api/internal/service"
	"github.com/xanderson/homebank-api/internal/store"
)

// setupRouter creates the router from the application's dependencies.
func (app *application) setupRouter() http.Handler {
	return newRouter(app.userService, app.db, app.logger)
}

// newRouter registers middleware and routes. db may be nil, in which case
// /ready always reports ready.
func newRouter(userService service.UserService, db store.Pinger, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(logger))
	r.Use(metrics.Middleware)

	userHandler := api.NewUserHandler(userService, logger)
	healthHandler := api.NewHealthHandler(db, logger)

	r.Route("/users", func(r chi.Router) {
		r.Post("/", userHandler.CreateUser)
		r.Get("/{id}", userHandler.GetUser)
	})

	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
