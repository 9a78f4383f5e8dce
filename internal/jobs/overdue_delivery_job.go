package jobs

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// OverdueDeliveryJob watches for in-progress orders whose expected delivery
// date has passed. Runs every minute and publishes a delivery_overdue event
// per late order so downstream consumers can nudge the seller.
type OverdueDeliveryJob struct {
	handler   queries.GetOverdueOrdersQueryHandler
	publisher ports.EventPublisher
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOverdueDeliveryJob creates a job that scans for overdue orders.
func NewOverdueDeliveryJob(
	handler queries.GetOverdueOrdersQueryHandler,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) *OverdueDeliveryJob {
	return &OverdueDeliveryJob{
		handler:   handler,
		publisher: publisher,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "overdue_delivery_job"),
	}
}

// Start begins the overdue delivery scan, running at the top of every minute.
func (j *OverdueDeliveryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue delivery job started (running every minute)")
	return nil
}

// Stop stops the overdue delivery job.
func (j *OverdueDeliveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue delivery job stopped")
}

func (j *OverdueDeliveryJob) run() {
	ctx := context.Background()

	overdue, err := j.handler.Handle(ctx, queries.NewGetOverdueOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue delivery scan failed", "error", err)
		return
	}

	now := time.Now().UTC()
	for _, o := range overdue {
		j.publisher.Publish(ctx, ports.TransitionEvent{
			Kind:        ports.TransitionDeliveryOverdue,
			OrderID:     o.ID,
			OrderNumber: o.OrderNumber,
			BuyerID:     o.BuyerID,
			SellerID:    o.SellerID,
			Status:      order.InProgress,
			OccurredAt:  now,
		})
	}

	if len(overdue) > 0 {
		j.logger.InfoContext(ctx, "Overdue orders found", "count", len(overdue))
	}
}
