package commands

import (
	"context"
	"time"

	"marketplace/internal/core/ports"
)

// CancelOrderCommandHandler calls off an order that has not been delivered.
// Either party may cancel while the order is pending or in progress. No money
// moves here: refunding the buyer's charge is the payment provider's side of
// the house.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the cancellation.
// The conditional status write ensures a cancellation racing a delivery or an
// acceptance resolves to exactly one winner.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	expectedStatus := aggregate.Status()

	if err := aggregate.Cancel(command.CallerID()); err != nil {
		return err
	}

	if err := orderRepo.UpdateWithExpectedStatus(ctx, aggregate, expectedStatus); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, transitionEvent(ports.TransitionOrderCancelled, aggregate, time.Now().UTC()))

	return nil
}
