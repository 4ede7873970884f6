package jobs

import (
	"context"
	"log/slog"

	"agrimarket/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// KPIReportJob periodically computes and logs the fulfillment KPI report.
// Read-only: it never mutates marketplace state.
type KPIReportJob struct {
	handler queries.GetKPIReportQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewKPIReportJob creates a job that logs the KPI report once a minute.
func NewKPIReportJob(handler queries.GetKPIReportQueryHandler, logger *slog.Logger) *KPIReportJob {
	return &KPIReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "kpi_report_job"),
	}
}

// Start begins the KPI report job to run at the top of every minute.
func (j *KPIReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetKPIReportQuery()

		report, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "KPI report job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "KPI report",
			"kg_delivered", report.KgDelivered,
			"orders_delivered", report.OrdersDelivered,
			"buyer_arranged_logistics", report.BuyerArrangedLogistics,
			"external_courier", report.ExternalCourier,
			"total_revenue", report.TotalRevenue.String(),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "KPI report job started (running every minute)")
	return nil
}

// Stop stops the KPI report job.
func (j *KPIReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "KPI report job stopped")
}
