package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	httpapi "assetdesk-backend/internal/api/http"
	"assetdesk-backend/internal/config"
	"assetdesk-backend/internal/jobs"
	"assetdesk-backend/internal/logger"
	"assetdesk-backend/internal/repository/postgres"
	"assetdesk-backend/internal/scheduler"
	"assetdesk-backend/internal/security"
	"assetdesk-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Assetdesk Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)

	// Initialize Services
	requestSvc := service.NewRequestService(
		store.RequestRepository,
		store.AssetRepository,
		store.AffiliationRepository,
		store.WorkflowRepository,
	)
	assetSvc := service.NewAssetService(store.AssetRepository)
	assignmentSvc := service.NewAssignmentService(store.AssignmentRepository, store.WorkflowRepository)
	affiliationSvc := service.NewAffiliationService(store.AffiliationRepository)
	subscriptionSvc := service.NewSubscriptionService(
		store.PaymentRepository,
		store.PackageRepository,
		store.OrganizationRepository,
	)

	// Start the in-process scheduler for payment reconciliation and
	// counter audits
	jobRunner := jobs.NewJobRunner(subscriptionSvc, store.OrganizationRepository, store.AssetRepository, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	// Set up HTTP server
	router := httpapi.NewRouter(httpapi.Services{
		Requests:      requestSvc,
		Assets:        assetSvc,
		Assignments:   assignmentSvc,
		Affiliations:  affiliationSvc,
		Subscriptions: subscriptionSvc,
	}, tokenManager)

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.RequestTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.RequestTimeout) * time.Second,
	}

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
