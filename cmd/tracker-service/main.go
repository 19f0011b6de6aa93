package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-law-tracker/internal/tracker/config"
	delivery "golang-law-tracker/internal/tracker/delivery/http"
	_ "golang-law-tracker/internal/tracker/docs"
	"golang-law-tracker/internal/tracker/repository"
	"golang-law-tracker/internal/tracker/service"
	"golang-law-tracker/pkg/logger"
	"golang-law-tracker/pkg/postgres"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the law tracker service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Law Tracker Service", logger.Field("name", cfg.App.Name))

	// Initialize the persistence backend. A configured database host selects
	// the relational backend; otherwise laws live in local JSON snapshots.
	var lawRepo repository.LawRepository
	if cfg.Database.Host != "" {
		postgresCfg := postgres.Config{
			Host:            cfg.Database.Host,
			Port:            cfg.Database.Port,
			User:            cfg.Database.User,
			Password:        cfg.Database.Password,
			DBName:          cfg.Database.DBName,
			SSLMode:         cfg.Database.SSLMode,
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		}
		db, err := postgres.NewDB(postgresCfg)
		if err != nil {
			appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
		}
		if sqlDB, err := db.DB.DB(); err == nil {
			defer sqlDB.Close()
		}
		lawRepo = repository.NewPostgresLawRepository(db.DB, appLogger)
		appLogger.Info("Using postgres persistence backend")
	} else {
		lawRepo, err = repository.NewFileLawRepository(cfg.Storage.DataDir, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize file store", logger.ErrorField(err))
		}
		appLogger.Info("Using file persistence backend", logger.Field("data_dir", cfg.Storage.DataDir))
	}

	inferenceRepo := repository.NewHTTPInferenceRepository(cfg, appLogger)
	if cfg.Inference.EndpointURL == "" {
		appLogger.Warn("Inference endpoint not configured, document extraction will rely on text heuristics")
	}

	// Initialize services
	extractionSvc := service.NewExtractionService(inferenceRepo, appLogger)
	lawSvc := service.NewLawService(lawRepo, appLogger)
	ingestionSvc := service.NewIngestionService(lawRepo, extractionSvc, appLogger)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Initialize handlers and routes
	apiV1 := e.Group("/api/v1")

	lawHandler := delivery.NewLawHandler(lawSvc, appLogger)
	lawsGroup := apiV1.Group("/laws")
	lawHandler.RegisterRoutes(lawsGroup)

	analyticsHandler := delivery.NewAnalyticsHandler(lawSvc, appLogger)
	analyticsHandler.RegisterRoutes(apiV1)

	documentHandler := delivery.NewDocumentHandler(ingestionSvc, cfg, appLogger)
	documentsGroup := apiV1.Group("/documents")
	documentHandler.RegisterRoutes(documentsGroup)

	e.GET("/swagger/*", swagger.WrapHandler)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	// Gracefully shutdown the server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title Law Impact Tracker API
// @version 1.0
// @description Regulatory impact tracking service for laws and affected stocks.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "tracker-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing tracker-service CLI: %s\n", err)
		os.Exit(1)
	}
}
