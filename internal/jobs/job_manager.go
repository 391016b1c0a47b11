package jobs

import (
	"fmt"
	"log/slog"

	"ordering/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	lowStockAlertJob *LowStockAlertJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	lowStockHandler queries.GetLowStockProductsQueryHandler,
	lowStockThreshold int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		lowStockAlertJob: NewLowStockAlertJob(lowStockHandler, lowStockThreshold, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.lowStockAlertJob.Start(); err != nil {
		return fmt.Errorf("failed to start low stock alert job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.lowStockAlertJob.Stop()
}
