package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/achariya/guardrail/internal/config"
	"github.com/achariya/guardrail/internal/guardrail"
	"github.com/achariya/guardrail/internal/handlers"
	"github.com/achariya/guardrail/internal/middleware"
	"github.com/achariya/guardrail/internal/services/gemini"
)

func New(cfg *config.Config, logger *zap.Logger, engine *guardrail.Engine, model *gemini.Client) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	healthHandler := handlers.NewHealthHandler(model)
	guardrailHandler := handlers.NewGuardrailHandler(engine, logger)
	chatHandler := handlers.NewChatHandler(engine, model, logger)

	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/guardrail/check", guardrailHandler.Check)
		r.Post("/chat", chatHandler.Chat)
	})

	return r
}
