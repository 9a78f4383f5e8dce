// Package review contains the Review entity: one buyer's rating of one
// completed order. Reviews are written once and never edited or deleted.
package review

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/seller"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrReviewIsNotConstructed is returned when a Review was not created via NewReview.
	ErrReviewIsNotConstructed = errors.New("Review must be created via NewReview")

	// ErrAlreadyReviewed indicates that a review for the (order, buyer) pair
	// already exists. At most one review per order is allowed.
	ErrAlreadyReviewed = errors.New("order has already been reviewed")
)

// Review is one buyer's immutable rating of one completed order.
// It denormalizes the order and seller metadata needed to render review
// listings without joining back to the order collection.
type Review struct {
	id      kernel.UUID
	orderID kernel.UUID

	buyerID   kernel.UUID
	buyerName string

	sellerID   kernel.UUID
	sellerName string

	gigID       kernel.UUID
	gigTitle    string
	orderNumber string
	packageKind string

	rating    int
	body      string
	createdAt time.Time

	isConstructed bool
}

// NewReview creates a validated Review. The rating must be within the star
// scale and the body must not be empty.
func NewReview(
	id, orderID, buyerID kernel.UUID,
	buyerName string,
	sellerID kernel.UUID,
	sellerName string,
	gigID kernel.UUID,
	gigTitle, orderNumber, packageKind string,
	rating int,
	body string,
	createdAt time.Time,
) (*Review, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		buyerID.Validate(),
		sellerID.Validate(),
		gigID.Validate(),
	); err != nil {
		return nil, err
	}

	if rating < seller.MinRating || rating > seller.MaxRating {
		return nil, errs.NewValueIsOutOfRangeError("rating", rating, seller.MinRating, seller.MaxRating)
	}
	if body == "" {
		return nil, errs.NewValueIsRequiredError("review body")
	}

	return &Review{
		id:            id,
		orderID:       orderID,
		buyerID:       buyerID,
		buyerName:     buyerName,
		sellerID:      sellerID,
		sellerName:    sellerName,
		gigID:         gigID,
		gigTitle:      gigTitle,
		orderNumber:   orderNumber,
		packageKind:   packageKind,
		rating:        rating,
		body:          body,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Review was created through NewReview.
func (r *Review) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReviewIsNotConstructed
	}
	return nil
}

// ID returns the review's unique identifier.
func (r *Review) ID() kernel.UUID {
	return r.id
}

// OrderID returns the reviewed order's identifier.
func (r *Review) OrderID() kernel.UUID {
	return r.orderID
}

// BuyerID returns the reviewing buyer's user id.
func (r *Review) BuyerID() kernel.UUID {
	return r.buyerID
}

// BuyerName returns the reviewing buyer's display name.
func (r *Review) BuyerName() string {
	return r.buyerName
}

// SellerID returns the reviewed seller's user id.
func (r *Review) SellerID() kernel.UUID {
	return r.sellerID
}

// SellerName returns the reviewed seller's display name.
func (r *Review) SellerName() string {
	return r.sellerName
}

// GigID returns the gig the reviewed order was placed against.
func (r *Review) GigID() kernel.UUID {
	return r.gigID
}

// GigTitle returns the reviewed gig's title.
func (r *Review) GigTitle() string {
	return r.gigTitle
}

// OrderNumber returns the human-readable number of the reviewed order.
func (r *Review) OrderNumber() string {
	return r.orderNumber
}

// PackageKind returns the package tier of the reviewed order.
func (r *Review) PackageKind() string {
	return r.packageKind
}

// Rating returns the star rating (1..5).
func (r *Review) Rating() int {
	return r.rating
}

// Body returns the free-text review body.
func (r *Review) Body() string {
	return r.body
}

// CreatedAt returns when the review was submitted.
func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}
