package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"assetdesk-backend/internal/config"
	"assetdesk-backend/internal/jobs"
	"assetdesk-backend/internal/logger"
	"assetdesk-backend/internal/repository/postgres"
	"assetdesk-backend/internal/scheduler"
	"assetdesk-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit ('reconcile-payments', 'audit-counters', 'all')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Assetdesk Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
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

	// Initialize Repositories and Services
	store := postgres.NewStore(db)
	subscriptionSvc := service.NewSubscriptionService(
		store.PaymentRepository,
		store.PackageRepository,
		store.OrganizationRepository,
	)

	jobRunner := jobs.NewJobRunner(subscriptionSvc, store.OrganizationRepository, store.AssetRepository, cfg)

	// One-shot mode for manual runs and debugging
	if *runOnce != "" {
		switch *runOnce {
		case "reconcile-payments":
			jobRunner.ReconcilePayments()
		case "audit-counters":
			jobRunner.AuditCounters()
		case "all":
			jobRunner.RunAll()
		default:
			log.Fatalf("Unknown job: %s", *runOnce)
		}
		return
	}

	// Scheduled mode
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()

	// Block until interrupted
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("Shutting down...")
	sched.Stop()
}
