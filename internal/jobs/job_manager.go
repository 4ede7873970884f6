package jobs

import (
	"fmt"
	"log/slog"

	"agrimarket/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	kpiReportJob *KPIReportJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the KPI query handler as a dependency to wire up the report job.
func NewJobManager(
	kpiReportHandler queries.GetKPIReportQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		kpiReportJob: NewKPIReportJob(kpiReportHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.kpiReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start KPI report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.kpiReportJob.Stop()
}
