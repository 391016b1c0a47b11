// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the ordering service.
//
// # Available Jobs
//
// 1. LowStockAlertJob - Runs every minute to report products running low on stock
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(lowStockHandler, threshold, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The low stock scan uses the cron expression "@every 1m". Stock only moves
// when orders are placed, so a minute of staleness is acceptable for an
// operator-facing alert.
//
// # Error Handling
//
// - Scan failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
