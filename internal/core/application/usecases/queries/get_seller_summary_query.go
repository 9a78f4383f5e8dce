package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetSellerSummaryQueryIsNotConstructed = errors.New(
	"GetSellerSummaryQuery must be created via NewGetSellerSummaryQuery constructor",
)

// GetSellerSummaryQuery retrieves a seller's earnings and rating summary.
type GetSellerSummaryQuery struct {
	sellerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSellerSummaryQuery creates a query for a seller's summary.
func NewGetSellerSummaryQuery(sellerID kernel.UUID) (GetSellerSummaryQuery, error) {
	if err := sellerID.Validate(); err != nil {
		return GetSellerSummaryQuery{}, err
	}

	return GetSellerSummaryQuery{
		sellerID: sellerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetSellerSummaryQueryIsNotConstructed if validation fails.
func (q GetSellerSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetSellerSummaryQueryIsNotConstructed)
}

// SellerID returns the seller whose summary is requested.
func (q GetSellerSummaryQuery) SellerID() kernel.UUID {
	return q.sellerID
}

// GetSellerSummaryQueryResponse is the seller's earnings and rating summary.
// AverageRating is computed from the stored sum and count at read time; it is
// zero while the seller has no reviews.
type GetSellerSummaryQueryResponse struct {
	SellerID              kernel.UUID
	DisplayName           string
	AvailableBalanceCents int64
	TotalEarningsCents    int64
	ReviewCount           int64
	AverageRating         float64
}
