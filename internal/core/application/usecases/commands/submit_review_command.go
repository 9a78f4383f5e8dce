package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/seller"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrSubmitReviewCommandIsNotConstructed = errors.New(
	"SubmitReviewCommand must be created via NewSubmitReviewCommand constructor",
)

// SubmitReviewCommand represents the buyer rating a completed order.
// One review per order per buyer; the rating feeds the seller's aggregate
// rating counters.
type SubmitReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID kernel.UUID
	orderID  kernel.UUID
	callerID kernel.UUID
	rating   int
	body     string

	guard guard.ConstructorGuard
}

// NewSubmitReviewCommand creates a command to submit a review.
// The rating must sit on the star scale and the text must not be empty.
func NewSubmitReviewCommand(
	reviewID, orderID, callerID kernel.UUID,
	rating int,
	body string,
) (SubmitReviewCommand, error) {
	if err := errors.Join(reviewID.Validate(), orderID.Validate(), callerID.Validate()); err != nil {
		return SubmitReviewCommand{}, err
	}
	if rating < seller.MinRating || rating > seller.MaxRating {
		return SubmitReviewCommand{}, errs.NewValueIsOutOfRangeError(
			"rating", rating, seller.MinRating, seller.MaxRating)
	}
	if body == "" {
		return SubmitReviewCommand{}, errs.NewValueIsRequiredError("review body")
	}

	return SubmitReviewCommand{
		reviewID: reviewID,
		orderID:  orderID,
		callerID: callerID,
		rating:   rating,
		body:     body,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitReviewCommandIsNotConstructed if validation fails.
func (c SubmitReviewCommand) Validate() error {
	return c.guard.Validate(ErrSubmitReviewCommandIsNotConstructed)
}

// ReviewID returns the identifier for the review to create.
func (c SubmitReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

// OrderID returns the reviewed order.
func (c SubmitReviewCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CallerID returns the user submitting the review.
func (c SubmitReviewCommand) CallerID() kernel.UUID {
	return c.callerID
}

// Rating returns the star rating, 1 through 5.
func (c SubmitReviewCommand) Rating() int {
	return c.rating
}

// Body returns the review text.
func (c SubmitReviewCommand) Body() string {
	return c.body
}
