package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kennelhouse/kennel-backend/internal/config"
	"github.com/kennelhouse/kennel-backend/internal/database"
	"github.com/kennelhouse/kennel-backend/internal/handler"
	"github.com/kennelhouse/kennel-backend/internal/logger"
	"github.com/kennelhouse/kennel-backend/internal/middleware"
	"github.com/kennelhouse/kennel-backend/internal/model"
	"github.com/kennelhouse/kennel-backend/internal/repository"
	"github.com/kennelhouse/kennel-backend/internal/repository/memory"
	"github.com/kennelhouse/kennel-backend/internal/router"
	"github.com/kennelhouse/kennel-backend/internal/service"
	"github.com/kennelhouse/kennel-backend/internal/validator"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("storage", cfg.StorageDriver).
		Str("log_level", cfg.LogLevel).
		Msg("Starting kennel backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Initialize Repositories ───────────────────────────────────────
	var repos *repository.Repositories
	switch cfg.StorageDriver {
	case config.StorageMemory:
		log.Warn().Msg("Using in-memory storage; data is lost on restart")
		repos = memory.New(nil)
	default:
		pool, err := database.NewPostgresPool(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		repos = repository.NewPostgres(pool)
	}

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(repos.Users, log)
	dogService := service.NewDogService(repos.Dogs, log)
	litterService := service.NewLitterService(repos.Litters, log)
	galleryService := service.NewGalleryService(repos.Gallery, log)
	messageService := service.NewMessageService(repos.Messages, log)

	if cfg.StorageDriver == config.StorageMemory && cfg.DevAdminPassword != "" {
		if _, err := authService.CreateUser(ctx, "admin", cfg.DevAdminPassword, model.RoleAdmin); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed development admin")
		}
		log.Info().Str("username", "admin").Msg("Seeded development admin")
	}

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:    handler.NewAuthHandler(authService),
		Dog:     handler.NewDogHandler(dogService),
		Litter:  handler.NewLitterHandler(litterService),
		Gallery: handler.NewGalleryHandler(galleryService),
		Message: handler.NewMessageHandler(messageService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	az := middleware.NewHeaderAuthorizer(cfg.RoleHeader, model.Role(cfg.DefaultRole))
	r := router.SetupRouter(cfg, handlers, az, log)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
