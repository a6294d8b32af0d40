package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/neonsoul/neonsoul/internal/config"
	"github.com/neonsoul/neonsoul/internal/server/feed"
	"github.com/neonsoul/neonsoul/internal/server/handlers"
	"github.com/neonsoul/neonsoul/internal/server/middleware"
	"github.com/neonsoul/neonsoul/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Parse flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Конфигурация валидируется один раз при старте
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Открываем SQLite storage и выполняем миграции
	userStorage, err := sqlite.New(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := userStorage.Close(); err != nil {
			logger.Error("failed to close storage", slog.Any("error", err))
		}
	}()

	// Генератор ленты поверх OpenAI chat модели
	feedGenerator, err := feed.NewOpenAIGenerator(ctx, cfg.OpenAIAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create feed generator: %w", err)
	}

	jwtConfig := handlers.JWTConfig{
		Secret:   []byte(cfg.JWTSecret),
		TokenTTL: config.TokenTTL,
	}

	authHandler := handlers.NewAuthHandler(logger, userStorage, jwtConfig)
	avatarHandler := handlers.NewAvatarHandler(logger, userStorage, jwtConfig)
	feedHandler := handlers.NewFeedHandler(logger, feedGenerator)
	healthHandler := handlers.NewHealthHandler(logger)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/register", authHandler.Register)
	mux.HandleFunc("POST /api/login", authHandler.Login)
	mux.HandleFunc("POST /api/avatar", avatarHandler.CreateAvatar)
	mux.HandleFunc("GET /api/feed", feedHandler.Feed)
	mux.HandleFunc("GET /api/health", healthHandler.Health)

	// Оборачиваем весь mux в recovery и логирование
	handler := middleware.RecoveryMiddleware(logger)(
		middleware.LoggingMiddleware(logger)(mux),
	)

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", slog.String("address", cfg.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	// Graceful shutdown
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	return nil
}

func printVersion() {
	fmt.Printf("NEONSOUL Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
