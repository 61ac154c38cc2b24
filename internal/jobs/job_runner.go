package jobs

import (
	"context"
	"time"

	"assetdesk-backend/internal/config"
	"assetdesk-backend/internal/logger"
	"assetdesk-backend/internal/repository"
	"assetdesk-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	subscriptions service.SubscriptionService
	orgRepo       repository.OrganizationRepository
	assetRepo     repository.AssetRepository
	config        *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(
	subscriptions service.SubscriptionService,
	orgRepo repository.OrganizationRepository,
	assetRepo repository.AssetRepository,
	cfg *config.Config,
) *JobRunner {
	return &JobRunner{
		subscriptions: subscriptions,
		orgRepo:       orgRepo,
		assetRepo:     assetRepo,
		config:        cfg,
	}
}

// Config returns the loaded configuration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func(ctx context.Context)) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	logger.Info("Starting job", "job", jobName)
	jobFunc(ctx)
	logger.Info("Job completed", "job", jobName)
}

// RunAll runs every job once (for manual execution from the cronjob binary)
func (jr *JobRunner) RunAll() {
	jr.ReconcilePayments()
	jr.AuditCounters()
}
