// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the fulfillment service.
//
// # Available Jobs
//
// 1. KPIReportJob - Runs every minute to compute and log the fulfillment KPI summary
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(kpiReportHandler, logger)
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
// The KPI report job uses the cron expression "0 * * * * *" which fires at
// the top of every minute. The job is read-only and safe to run alongside
// request traffic.
//
// # Error Handling
//
// - Report computation failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
