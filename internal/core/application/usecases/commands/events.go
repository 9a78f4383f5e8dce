package commands

import (
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// transitionEvent builds the post-commit event for a lifecycle transition.
func transitionEvent(kind ports.TransitionKind, aggregate *order.Order, now time.Time) ports.TransitionEvent {
	return ports.TransitionEvent{
		Kind:        kind,
		OrderID:     aggregate.ID(),
		OrderNumber: aggregate.OrderNumber(),
		BuyerID:     aggregate.Buyer().ID(),
		SellerID:    aggregate.Seller().ID(),
		Status:      aggregate.Status(),
		OccurredAt:  now,
	}
}
