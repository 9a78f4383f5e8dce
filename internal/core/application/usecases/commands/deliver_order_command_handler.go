package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// DeliverOrderCommandHandler submits the seller's work for buyer review.
// Attaches any final files, links, and note, then moves the order to the
// delivered status. Delivery requires at least one file or link on record.
//
// Example:
//
//	handler := NewDeliverOrderCommandHandler(uowFactory, publisher)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrNothingDelivered):
//	    log.Println("Attach a file or a link first")
//	case err != nil:
//	    log.Printf("Delivery failed: %v", err)
//	}
type DeliverOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewDeliverOrderCommandHandler creates a handler for order delivery.
func NewDeliverOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the delivery command.
// Carried attachments are persisted first so the delivery check sees them,
// then the status transition is written conditioned on the status the handler
// read. Everything commits in one transaction.
func (h DeliverOrderCommandHandler) Handle(ctx context.Context, command DeliverOrderCommand) error {
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

	for _, file := range command.Files() {
		artifact, err := order.NewArtifact(file.Name, file.URL, file.ByteSize, file.MediaType, now)
		if err != nil {
			return err
		}
		if err := aggregate.AddDeliveryFile(command.CallerID(), artifact); err != nil {
			return err
		}
		if err := orderRepo.AppendDeliveryFile(ctx, aggregate.ID(), artifact); err != nil {
			return err
		}
	}

	for _, link := range command.Links() {
		if err := aggregate.AddDeliveryLink(command.CallerID(), link); err != nil {
			return err
		}
		if err := orderRepo.AppendDeliveryLink(ctx, aggregate.ID(), link); err != nil {
			return err
		}
	}

	if note := command.Note(); note != "" {
		if err := aggregate.SetDeliveryNote(command.CallerID(), note); err != nil {
			return err
		}
		if err := orderRepo.SetDeliveryNote(ctx, aggregate.ID(), note); err != nil {
			return err
		}
	}

	if err := aggregate.Deliver(command.CallerID(), now); err != nil {
		return err
	}

	if err := orderRepo.UpdateWithExpectedStatus(ctx, aggregate, expectedStatus); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.Publish(ctx, transitionEvent(ports.TransitionOrderDelivered, aggregate, now))

	return nil
}
