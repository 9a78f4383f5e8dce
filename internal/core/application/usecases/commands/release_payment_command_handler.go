package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// ReleasePaymentCommandHandler completes an order and settles the seller.
// The status transition and the balance credit share one transaction, and the
// transition is conditioned on the delivered status: of two concurrent
// releases exactly one commits, so the seller is credited exactly once.
// The seller receives the package price; the service fee stays with the
// platform.
//
// Example:
//
//	handler := NewReleasePaymentCommandHandler(uowFactory, publisher)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConcurrencyConflict) {
//	    log.Println("Order changed underneath us, re-read and retry")
//	}
type ReleasePaymentCommandHandler struct {
	uowFactory SettlementUoWFactory
	publisher  ports.EventPublisher
}

// NewReleasePaymentCommandHandler creates a handler for payment release.
func NewReleasePaymentCommandHandler(
	uowFactory SettlementUoWFactory,
	publisher ports.EventPublisher,
) ReleasePaymentCommandHandler {
	return ReleasePaymentCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the payment release.
// A repeat release on an already completed order is a no-op: the first
// release settled the seller and nothing remains to do. Any other state
// mismatch surfaces as the aggregate's transition error.
func (h ReleasePaymentCommandHandler) Handle(ctx context.Context, command ReleasePaymentCommand) error {
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

	if aggregate.Status() == order.Completed && aggregate.IsBuyer(command.CallerID()) {
		return nil
	}

	now := time.Now().UTC()
	expectedStatus := aggregate.Status()

	if err := aggregate.Complete(command.CallerID(), now); err != nil {
		return err
	}

	if err := orderRepo.UpdateWithExpectedStatus(ctx, aggregate, expectedStatus); err != nil {
		return err
	}

	if err := uow.SellerRepository().CreditEarnings(ctx, aggregate.Seller().ID(), aggregate.Price()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, transitionEvent(ports.TransitionOrderCompleted, aggregate, now))

	return nil
}
