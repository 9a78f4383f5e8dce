package commands

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/order"
)

// AttachDeliverableCommandHandler extends an order's delivery record.
// The aggregate enforces that only the seller may attach and only while the
// order is in progress or under revision; persistence appends files and links
// as individual rows so concurrent uploads never clobber each other.
type AttachDeliverableCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAttachDeliverableCommandHandler creates a handler for deliverable attachment.
func NewAttachDeliverableCommandHandler(uowFactory OrderUoWFactory) AttachDeliverableCommandHandler {
	return AttachDeliverableCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the attachment command.
// Runs the aggregate's authorization and status checks, then persists the
// single attached item.
func (h AttachDeliverableCommandHandler) Handle(ctx context.Context, command AttachDeliverableCommand) error {
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

	switch command.Kind() {
	case AttachFile:
		artifact, err := order.NewArtifact(
			command.FileName(),
			command.FileURL(),
			command.FileByteSize(),
			command.FileMediaType(),
			time.Now().UTC(),
		)
		if err != nil {
			return err
		}
		if err := aggregate.AddDeliveryFile(command.CallerID(), artifact); err != nil {
			return err
		}
		if err := orderRepo.AppendDeliveryFile(ctx, aggregate.ID(), artifact); err != nil {
			return err
		}

	case AttachLink:
		if err := aggregate.AddDeliveryLink(command.CallerID(), command.Link()); err != nil {
			return err
		}
		if err := orderRepo.AppendDeliveryLink(ctx, aggregate.ID(), command.Link()); err != nil {
			return err
		}

	case AttachNote:
		if err := aggregate.SetDeliveryNote(command.CallerID(), command.Note()); err != nil {
			return err
		}
		if err := orderRepo.SetDeliveryNote(ctx, aggregate.ID(), command.Note()); err != nil {
			return err
		}

	default:
		return fmt.Errorf("unsupported attach kind: %d", command.Kind())
	}

	return uow.Commit(ctx)
}
