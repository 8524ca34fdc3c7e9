package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/community-content-api/internal/api"
	"github.com/community-content-api/internal/blob"
	"github.com/community-content-api/internal/config"
	"github.com/community-content-api/internal/database"
	"github.com/community-content-api/internal/ocr"
	"github.com/community-content-api/internal/repository"
	"github.com/community-content-api/internal/service"
	"github.com/community-content-api/internal/validation"
	"github.com/community-content-api/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting Community Content API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize database
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	// Run migrations
	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}
	if err := db.RunMigrations(migrationsPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	// Initialize repositories
	repos := repository.New(db)

	// Load the allowed subject set into the validator
	validator := validation.NewValidator()
	subjects, err := repos.Subject.GetAllNames(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load subjects")
	}
	validator.SetSubjectCache(subjects)
	log.Info().Int("subjects", len(subjects)).Msg("Subject set loaded")

	// Initialize collaborators
	blobStore, err := blob.NewOSSStore(&cfg.Blob, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize blob store")
	}
	recognizer := ocr.NewClient(&cfg.OCR, log)
	scorer := ocr.NewScorer(recognizer, cfg.OCR.Language)

	// Initialize services
	services := service.NewServices(repos, blobStore, scorer, validator, cfg, log)

	// Initialize router
	router := api.NewRouter(services, repos, cfg, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}
