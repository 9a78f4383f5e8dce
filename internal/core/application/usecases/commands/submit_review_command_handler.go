package commands

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/review"
)

var ErrOrderIsNotCompleted = errors.New("only completed orders can be reviewed")

// SubmitReviewCommandHandler records the buyer's review of a completed order.
// The review row and the seller's rating counters are written in the same
// transaction: the stored sum and count always agree with the review table,
// and the average is derived from them on read.
//
// Example:
//
//	handler := NewSubmitReviewCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, review.ErrAlreadyReviewed):
//	    log.Println("Order already reviewed")
//	case errors.Is(err, ErrOrderIsNotCompleted):
//	    log.Println("Wait for the order to complete")
//	}
type SubmitReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewSubmitReviewCommandHandler creates a handler for review submission.
func NewSubmitReviewCommandHandler(uowFactory ReviewUoWFactory) SubmitReviewCommandHandler {
	return SubmitReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review submission.
// Checks the order is completed and the caller is its buyer, pre-checks for
// a duplicate, then persists the review and increments the seller's rating
// counters. A unique index on (order, buyer) backstops the pre-check, so a
// concurrent duplicate still surfaces as review.ErrAlreadyReviewed.
func (h SubmitReviewCommandHandler) Handle(ctx context.Context, command SubmitReviewCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if !aggregate.IsBuyer(command.CallerID()) {
		return order.ErrActorNotPermitted
	}
	if aggregate.Status() != order.Completed {
		return ErrOrderIsNotCompleted
	}

	reviewRepo := uow.ReviewRepository()

	exists, err := reviewRepo.ExistsForOrder(ctx, command.OrderID(), command.CallerID())
	if err != nil {
		return err
	}
	if exists {
		return review.ErrAlreadyReviewed
	}

	entity, err := review.NewReview(
		command.ReviewID(),
		aggregate.ID(),
		aggregate.Buyer().ID(),
		aggregate.Buyer().Name(),
		aggregate.Seller().ID(),
		aggregate.Seller().Name(),
		aggregate.GigID(),
		aggregate.GigTitle(),
		aggregate.OrderNumber(),
		aggregate.Package().Kind(),
		command.Rating(),
		command.Body(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err := reviewRepo.Add(ctx, entity); err != nil {
		return err
	}

	if err := uow.SellerRepository().AddRating(ctx, aggregate.Seller().ID(), command.Rating()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
