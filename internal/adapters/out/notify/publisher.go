// Package notify publishes order lifecycle events to the notification
// pipeline. The current implementation writes structured log records; the
// external messaging system tails them. Swapping in a broker-backed
// publisher only requires another ports.EventPublisher implementation.
package notify

import (
	"context"
	"log/slog"

	"marketplace/internal/core/ports"
)

// SlogEventPublisher emits one structured log record per lifecycle event.
type SlogEventPublisher struct {
	logger *slog.Logger
}

// NewSlogEventPublisher creates a publisher writing to the given logger.
func NewSlogEventPublisher(logger *slog.Logger) *SlogEventPublisher {
	return &SlogEventPublisher{
		logger: logger.With("component", "event_publisher"),
	}
}

// Publish writes the event. Best effort: errors cannot occur here and
// publishing never fails the business operation that produced the event.
func (p *SlogEventPublisher) Publish(ctx context.Context, event ports.TransitionEvent) {
	p.logger.InfoContext(ctx, "Order lifecycle event",
		"kind", string(event.Kind),
		"orderId", event.OrderID.String(),
		"orderNumber", event.OrderNumber,
		"buyerId", event.BuyerID.String(),
		"sellerId", event.SellerID.String(),
		"status", event.Status.String(),
		"occurredAt", event.OccurredAt,
	)
}
