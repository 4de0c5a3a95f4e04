package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/achariya/guardrail/internal/catalog"
	"github.com/achariya/guardrail/internal/config"
	"github.com/achariya/guardrail/internal/guardrail"
	"github.com/achariya/guardrail/internal/logger"
	"github.com/achariya/guardrail/internal/router"
	"github.com/achariya/guardrail/internal/services/gemini"
)

func main() {
	// Load .env file if exists
	_ = godotenv.Load()

	cfg, err := config.Load("")
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.Initialize(cfg.Logging)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	// The catalog is loaded exactly once; the engine treats it as read-only
	// for the life of the process.
	cat, warnings, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		log.Fatal("Failed to load pattern catalog", zap.Error(err))
	}
	for _, w := range warnings {
		log.Warn("catalog", zap.String("warning", w))
	}

	engine := guardrail.New(cat, log)
	model := gemini.NewClient(cfg.Gemini, cfg, log)

	if !model.IsAvailable() {
		log.Warn("Gemini credential missing or malformed - running in block/canned-response mode only")
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router.New(cfg, log, engine, model),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("Starting guardrail server", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdown)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exited")
}
