package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for reviews.
type ReviewRepository interface {
	// Add persists a new review. Returns review.ErrAlreadyReviewed when a
	// review for the same (order, buyer) pair already exists; a unique
	// constraint backs the check so concurrent duplicates cannot slip through.
	Add(ctx context.Context, aggregate *review.Review) error

	// ExistsForOrder reports whether the buyer has already reviewed the order.
	ExistsForOrder(ctx context.Context, orderID, buyerID kernel.UUID) (bool, error)
}
