package jobs

import (
	"context"
	"log/slog"

	"ordering/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// LowStockAlertJob periodically scans for products running low on stock
// and logs a warning per depleted product so operators can replenish
// inventory before orders start failing.
type LowStockAlertJob struct {
	handler   queries.GetLowStockProductsQueryHandler
	threshold int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewLowStockAlertJob creates a new job scanning stock levels every minute.
// Products at or below the threshold are reported.
func NewLowStockAlertJob(
	handler queries.GetLowStockProductsQueryHandler,
	threshold int,
	logger *slog.Logger,
) *LowStockAlertJob {
	return &LowStockAlertJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(),
		logger:    logger.With("component", "low_stock_alert_job"),
	}
}

// Start begins the low stock scan to run every minute.
func (j *LowStockAlertJob) Start() error {
	_, err := j.cron.AddFunc("@every 1m", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Low stock alert job started (running every minute)", "threshold", j.threshold)
	return nil
}

// Stop stops the low stock alert job.
func (j *LowStockAlertJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock alert job stopped")
}

func (j *LowStockAlertJob) run() {
	ctx := context.Background()

	query, err := queries.NewGetLowStockProductsQuery(j.threshold)
	if err != nil {
		j.logger.ErrorContext(ctx, "Low stock alert job failed", "error", err)
		return
	}

	products, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Low stock alert job failed", "error", err)
		return
	}

	for _, p := range products {
		j.logger.WarnContext(ctx, "Product is low on stock",
			"product_id", p.ID.String(), "name", p.Name, "quantity", p.Quantity)
	}
}
