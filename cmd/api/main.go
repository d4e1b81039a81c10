package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"financial-coach/config"
	_ "financial-coach/docs" // Swagger docs
	"financial-coach/internal/auth"
	coachHTTP "financial-coach/internal/coach/delivery/http"
	"financial-coach/internal/coach/repository"
	"financial-coach/internal/coach/repository/sqlite"
	"financial-coach/internal/coach/session"
	"financial-coach/internal/coach/usecase"
	"financial-coach/internal/httpserver"
	"financial-coach/internal/middleware"
	"financial-coach/pkg/llmprovider"
	"financial-coach/pkg/log"
)

// @title       Financial Coach API
// @description Conversational financial mindset coach with assessment-aware prompts.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Financial Coach...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Durable store
	repo, err := openRepository(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open store: ", err)
		os.Exit(1)
	}
	defer repo.Close()

	// 4. Model backend, selected once
	backend := llmprovider.SelectBackend(ctx, &cfg.LLM)
	if backend.Kind == llmprovider.BackendStub {
		logger.Warnf(ctx, "No LLM provider available, running on the stub backend: %v", backend.Reason)
	} else {
		logger.Infof(ctx, "LLM backend: %s (%s), system role: %t",
			backend.Provider.Name(), backend.Provider.Model(), backend.Provider.SupportsSystemRole())
	}
	manager := llmprovider.NewManager(backend, &llmprovider.Config{RequestTimeout: cfg.Coach.RequestTimeout}, logger)

	// 5. Coach domain
	uc := usecase.New(logger, session.NewMemory(cfg.Coach.MaxHistoryLength), repo, manager, usecase.Config{
		MaxHistoryLength: cfg.Coach.MaxHistoryLength,
		Temperature:      cfg.Coach.Temperature,
		TopP:             cfg.Coach.TopP,
		MaxTokens:        cfg.Coach.MaxTokens,
	})
	coachHandler := coachHTTP.New(logger, uc)

	if cfg.Auth.DevMode {
		logger.Warnf(ctx, "Auth dev mode is on: every request is attributed to %s", auth.DevUserID)
	}
	mw := middleware.New(logger, auth.NewStaticVerifier(cfg.Auth.Tokens), cfg)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		CoachHandler: coachHandler,
		Middleware:   mw,
		Store:        repo,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func openRepository(ctx context.Context, cfg config.StorageConfig, l log.Logger) (repository.Repository, error) {
	switch cfg.Driver {
	case config.StorageDriverNone:
		l.Warn(ctx, "Storage driver is none: conversations are kept in memory only")
		return repository.NewNop(), nil
	default:
		l.Infof(ctx, "Opening SQLite store at %s", cfg.Path)
		return sqlite.New(ctx, cfg.Path, l)
	}
}
