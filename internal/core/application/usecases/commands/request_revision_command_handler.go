package commands

import (
	"context"
	"time"

	"marketplace/internal/core/ports"
)

// RequestRevisionCommandHandler sends delivered work back to the seller.
// The aggregate guards the revision allowance: once the package's included
// revisions are used up the request is rejected and the buyer has to either
// release the payment or take it up with support.
//
// Example:
//
//	handler := NewRequestRevisionCommandHandler(uowFactory, publisher)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrRevisionQuotaExhausted) {
//	    log.Println("No revisions left on this package")
//	}
type RequestRevisionCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewRequestRevisionCommandHandler creates a handler for revision requests.
func NewRequestRevisionCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) RequestRevisionCommandHandler {
	return RequestRevisionCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the revision request.
// The quota check and counter increment happen inside the aggregate; the
// conditional status write makes concurrent revision requests and payment
// releases race safely, exactly one of them wins.
func (h RequestRevisionCommandHandler) Handle(ctx context.Context, command RequestRevisionCommand) error {
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

	now := time.Now().UTC()
	expectedStatus := aggregate.Status()

	if err := aggregate.RequestRevision(command.CallerID(), command.Message(), now); err != nil {
		return err
	}

	if err := orderRepo.UpdateWithExpectedStatus(ctx, aggregate, expectedStatus); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, transitionEvent(ports.TransitionRevisionRequested, aggregate, now))

	return nil
}
