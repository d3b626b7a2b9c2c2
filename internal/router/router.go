package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog"

	"employee-api/internal/auth"
	"employee-api/internal/config"
	"employee-api/internal/handlers"
	"employee-api/internal/middleware"
	"employee-api/internal/repository"
)

type Deps struct {
	DB      repository.Pinger
	Authn   *auth.Authenticator
	GraphQL http.Handler
}

func New(log zerolog.Logger, cfg config.Config, d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Origin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
	}))
	if cfg.RateLimitPerMin > 0 {
		r.Use(httprate.LimitByIP(cfg.RateLimitPerMin, time.Minute))
	}

	r.Get("/healthz", handlers.Health(d.DB))

	r.Group(func(r chi.Router) {
		r.Use(middleware.WithAuth(d.Authn))
		r.Handle("/graphql", d.GraphQL)
	})

	return r
}
