package commands

import (
	"context"
	"time"

	"marketplace/internal/core/ports"
)

// AcceptOrderCommandHandler moves a pending order into progress.
// Only the seller may accept, and only from the pending status; the write is
// conditioned on the status the handler read so a concurrent cancellation
// wins cleanly over a late acceptance.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the acceptance command.
// Loads the order, applies the transition through the aggregate, and persists
// conditioned on the previously read status.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, command AcceptOrderCommand) error {
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
	if err := aggregate.Accept(command.CallerID()); err != nil {
		return err
	}

	if err := orderRepo.UpdateWithExpectedStatus(ctx, aggregate, expectedStatus); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, transitionEvent(ports.TransitionOrderAccepted, aggregate, time.Now().UTC()))

	return nil
}
