package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mini-blog-api/internal/api"
	"github.com/mini-blog-api/internal/config"
	"github.com/mini-blog-api/internal/database"
	"github.com/mini-blog-api/internal/repository"
	"github.com/mini-blog-api/internal/service"
	"github.com/mini-blog-api/pkg/logger"
	"github.com/rs/zerolog"
)

func main() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	os.Exit(run(quit))
}

// run starts the server and blocks until a signal arrives on quit. It
// returns the process exit code so deferred cleanup always runs.
func run(quit <-chan os.Signal) int {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		// The configured logger needs the config, so fall back to stderr
		bootLog := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootLog.Error().Err(err).Msg("Failed to load configuration")
		return 1
	}

	// Initialize logger
	log := logger.New(cfg.Log)
	log.Info().Msg("Starting Mini Blog API server...")

	// Initialize database
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to database")
		return 1
	}
	defer db.Close()

	// Run migrations
	if cfg.Database.AutoMigrate {
		if err := db.RunMigrations(); err != nil {
			log.Error().Err(err).Msg("Failed to run database migrations")
			return 1
		}
	}

	// Initialize repositories
	repos := repository.New(db)

	// Initialize services
	services := service.NewServices(repos, log)

	// Initialize router
	router := api.NewRouter(services, db, cfg, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Server.Port).Str("driver", db.Driver()).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	// Graceful shutdown
	select {
	case err := <-serveErr:
		log.Error().Err(err).Msg("Server failed")
		return 1
	case <-quit:
	}
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
		return 1
	}

	log.Info().Msg("Server exited gracefully")
	return 0
}
