package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetSellerReviewsQueryIsNotConstructed = errors.New(
	"GetSellerReviewsQuery must be created via NewGetSellerReviewsQuery constructor",
)

// GetSellerReviewsQuery lists a seller's reviews, newest first.
type GetSellerReviewsQuery struct {
	sellerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSellerReviewsQuery creates a query for a seller's reviews.
func NewGetSellerReviewsQuery(sellerID kernel.UUID) (GetSellerReviewsQuery, error) {
	if err := sellerID.Validate(); err != nil {
		return GetSellerReviewsQuery{}, err
	}

	return GetSellerReviewsQuery{
		sellerID: sellerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetSellerReviewsQueryIsNotConstructed if validation fails.
func (q GetSellerReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetSellerReviewsQueryIsNotConstructed)
}

// SellerID returns the seller whose reviews are requested.
func (q GetSellerReviewsQuery) SellerID() kernel.UUID {
	return q.sellerID
}

// GetSellerReviewsQueryResponse is one review in a seller's listing,
// with the order and gig metadata denormalized at submission time.
type GetSellerReviewsQueryResponse struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	OrderNumber string
	BuyerName   string
	GigTitle    string
	PackageKind string
	Rating      int
	Body        string
	CreatedAt   time.Time
}
