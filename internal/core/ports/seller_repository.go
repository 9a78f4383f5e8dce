package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/seller"
)

// SellerRepository defines the persistence contract for seller account projections.
//
// Balance and rating fields are only ever mutated through the atomic increment
// methods, never by reading the account into memory and writing it back; this
// keeps concurrent settlements and review submissions commutative.
type SellerRepository interface {
	// Add persists a new seller account projection.
	Add(ctx context.Context, account *seller.Account) error

	// Ensure persists the seller account projection if no row exists for its
	// id yet. An existing row is left untouched, balances and rating counters
	// included. Sellers enter the system through their first order, so order
	// placement provisions the projection through this method.
	Ensure(ctx context.Context, account *seller.Account) error

	// Get retrieves a seller account by user id.
	// Returns errs.ErrObjectNotFound when no such seller exists.
	Get(ctx context.Context, id kernel.UUID) (*seller.Account, error)

	// CreditEarnings atomically increments the seller's available balance and
	// total earnings by the given amount (the settled order's price).
	CreditEarnings(ctx context.Context, sellerID kernel.UUID, amount kernel.Money) error

	// AddRating atomically increments the seller's rating sum by the given
	// rating and the rating count by one. The average is derived on read.
	AddRating(ctx context.Context, sellerID kernel.UUID, rating int) error
}
