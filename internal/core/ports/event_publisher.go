package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// TransitionKind names the lifecycle transition an event describes.
type TransitionKind string

// Transition kinds published by the engine. Delivery and retry of the
// resulting notifications belong to the external messaging system.
const (
	TransitionOrderPlaced       TransitionKind = "order_placed"
	TransitionOrderAccepted     TransitionKind = "order_accepted"
	TransitionOrderDelivered    TransitionKind = "order_delivered"
	TransitionRevisionRequested TransitionKind = "revision_requested"
	TransitionOrderCompleted    TransitionKind = "order_completed"
	TransitionOrderCancelled    TransitionKind = "order_cancelled"
	TransitionDeliveryOverdue   TransitionKind = "delivery_overdue"
)

// TransitionEvent describes one committed lifecycle transition.
// Events are emitted after the transaction commits; they are informational
// and carry no state the order document does not already hold.
type TransitionEvent struct {
	Kind        TransitionKind
	OrderID     kernel.UUID
	OrderNumber string
	BuyerID     kernel.UUID
	SellerID    kernel.UUID
	Status      order.Status
	OccurredAt  time.Time
}

// EventPublisher informs the messaging/notification system of committed
// transitions. Implementations must not fail the business operation:
// publishing is best effort and happens after commit.
type EventPublisher interface {
	Publish(ctx context.Context, event TransitionEvent)
}
