package http

import (
	"log/slog"
	"os"

	"github.com/empdash/empdash-backend-go/internal/config"
	"github.com/empdash/empdash-backend-go/internal/handler/http/middleware"
	"github.com/empdash/empdash-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(cfg *config.Config, JWTService jwt.Service, graphqlHandler GraphQLHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "empdash"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))
	r.Use(middleware.Metrics)

	if cfg.App.RateLimitPerMin > 0 {
		limiter := middleware.NewSimpleTokenBucket(cfg.App.RateLimitPerMin, cfg.App.RateLimitPerMin)
		r.Use(limiter.Handler)
	}

	r.Handle("/metrics", promhttp.Handler())

	// The single GraphQL endpoint carries its own per-operation access
	// control; the Verifier only decodes whatever bearer token is present.
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
		r.Use(middleware.Identity)
		r.Post("/graphql", graphqlHandler.Query)
	})

	return r
}
