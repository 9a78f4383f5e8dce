package commands

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/seller"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

// PlaceOrderCommandHandler creates new orders from checkout data.
// Applies the platform fee schedule, mints the order number and conversation
// identifier, and persists the order in its initial pending state. Placement
// also provisions the seller's account projection when this is the seller's
// first order, so settlement and review submission always find a row to
// increment.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Order placement failed: %v", err)
//	}
type PlaceOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
	publisher  ports.EventPublisher
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(
	uowFactory PlacementUoWFactory,
	publisher ports.EventPublisher,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order placement command.
// Computes the service fee from the package price, builds the order aggregate
// and stores it. The order_placed event is published only after the
// transaction commits.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, command PlaceOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	serviceFee := services.NewPricingPolicy().ServiceFee(command.Package().Price())

	aggregate, err := order.NewOrder(
		command.OrderID(),
		fmt.Sprintf("ORD-%d", now.UnixMilli()),
		command.Buyer(),
		command.Seller(),
		command.GigID(),
		command.GigTitle(),
		command.Package(),
		command.Requirements(),
		command.PaymentMethod(),
		serviceFee,
		now,
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	account, err := seller.NewAccount(command.Seller().ID(), command.Seller().Name())
	if err != nil {
		return err
	}

	if err := uow.SellerRepository().Ensure(ctx, account); err != nil {
		return err
	}

	if err := uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, transitionEvent(ports.TransitionOrderPlaced, aggregate, now))

	return nil
}
