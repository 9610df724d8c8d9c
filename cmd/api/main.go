package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/passadmin/passadmin-go/internal/config"
	"github.com/passadmin/passadmin-go/internal/crypto"
	"github.com/passadmin/passadmin-go/internal/handler"
	"github.com/passadmin/passadmin-go/internal/middleware"
	"github.com/passadmin/passadmin-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	src, err := crypto.NewSource(cfg.RandomSource, cfg.RandomSeed)
	if err != nil {
		slog.Error("random source", "error", err)
		os.Exit(1)
	}
	if cfg.RandomSource == crypto.SourceMath && cfg.IsProduction() {
		slog.Warn("non-cryptographic random source in production", "source", cfg.RandomSource)
	}

	genService := service.NewGeneratorService(crypto.NewGenerator(src), service.GeneratorOptions{
		DefaultLength:     cfg.DefaultLength,
		DefaultSeparators: cfg.DefaultSeparators,
		MaxLength:         cfg.MaxLength,
	})
	genHandler := handler.NewGeneratorHandler(genService)
	strengthHandler := handler.NewStrengthHandler(service.NewStrengthService())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	if cfg.JWTSecret == "" {
		slog.Warn("JWT_SECRET not set, API is unauthenticated")
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
		r.Post("/api/v1/strength", strengthHandler.HandleStrength)
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "random_source", cfg.RandomSource)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
