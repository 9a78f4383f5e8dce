// Package seller contains the seller account projection: the balance and
// review-aggregate fields that settlement and review submission mutate.
//
// The rating aggregate is stored as independently incrementable sum and count
// counters; the average is derived on read. This keeps concurrent review
// submissions commutative instead of racing on a stored mean.
package seller

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrAccountIsNotConstructed is returned when an Account was not created
	// via NewAccount or RestoreAccount.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount or RestoreAccount")
)

// MinRating and MaxRating bound the star scale used across the marketplace.
const (
	MinRating = 1
	MaxRating = 5
)

// Account is the seller-side projection of a user record: the escrow-released
// balance, lifetime earnings, and the review-aggregate counters.
//
// Invariants:
//   - totalEarnings is monotonic; it only ever grows by settled order prices
//   - ratingSum/ratingCount only grow, by one validated rating at a time
//   - the average rating is always ratingSum/ratingCount at read time
type Account struct {
	id          kernel.UUID
	displayName string

	availableBalance kernel.Money
	totalEarnings    kernel.Money

	ratingSum   int64
	ratingCount int64

	isConstructed bool
}

// NewAccount creates an empty seller account with zero balance and no reviews.
func NewAccount(id kernel.UUID, displayName string) (*Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if displayName == "" {
		return nil, errs.NewValueIsRequiredError("displayName")
	}

	return &Account{
		id:            id,
		displayName:   displayName,
		isConstructed: true,
	}, nil
}

// RestoreAccount reconstructs a seller account from persistence.
func RestoreAccount(
	id kernel.UUID,
	displayName string,
	availableBalance, totalEarnings kernel.Money,
	ratingSum, ratingCount int64,
) (*Account, error) {
	account, err := NewAccount(id, displayName)
	if err != nil {
		return nil, err
	}

	if ratingSum < 0 || ratingCount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"ratingAggregate", fmt.Errorf("sum %d / count %d must not be negative", ratingSum, ratingCount))
	}

	account.availableBalance = availableBalance
	account.totalEarnings = totalEarnings
	account.ratingSum = ratingSum
	account.ratingCount = ratingCount
	return account, nil
}

// Validate ensures the Account was created through a constructor.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// ID returns the seller's user id.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// DisplayName returns the seller's display name.
func (a *Account) DisplayName() string {
	return a.displayName
}

// AvailableBalance returns the funds released to the seller so far.
func (a *Account) AvailableBalance() kernel.Money {
	return a.availableBalance
}

// TotalEarnings returns the seller's lifetime settled earnings.
func (a *Account) TotalEarnings() kernel.Money {
	return a.totalEarnings
}

// RatingSum returns the sum of all ratings received.
func (a *Account) RatingSum() int64 {
	return a.ratingSum
}

// RatingCount returns the number of reviews received.
func (a *Account) RatingCount() int64 {
	return a.ratingCount
}

// AverageRating derives the mean rating from the sum/count counters.
// Returns 0 when the seller has no reviews yet.
func (a *Account) AverageRating() float64 {
	if a.ratingCount == 0 {
		return 0
	}
	return float64(a.ratingSum) / float64(a.ratingCount)
}

// CreditEarnings adds a settled order price to both the available balance and
// the lifetime earnings. The amount is the order price, never the service fee.
func (a *Account) CreditEarnings(amount kernel.Money) {
	a.availableBalance = a.availableBalance.Add(amount)
	a.totalEarnings = a.totalEarnings.Add(amount)
}

// AddRating folds one validated rating into the aggregate counters.
func (a *Account) AddRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}

	a.ratingSum += int64(rating)
	a.ratingCount++
	return nil
}
