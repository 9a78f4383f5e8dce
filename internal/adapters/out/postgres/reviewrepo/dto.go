// Package reviewrepo provides persistence for reviews. A composite unique
// index on (order_id, buyer_id) backstops the application-level duplicate
// check, so concurrent submissions cannot both land.
package reviewrepo

import (
	"time"

	"marketplace/internal/core/domain/model/review"

	"github.com/google/uuid"
)

// ReviewDTO is the database row for a review.
// Buyer, seller, gig, and order metadata are denormalized at write time so
// listings render without joins and survive later profile edits.
type ReviewDTO struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	OrderID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reviews_order_buyer"`
	BuyerID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reviews_order_buyer"`

	BuyerName   string
	SellerID    uuid.UUID `gorm:"type:uuid;index"`
	SellerName  string
	GigID       uuid.UUID `gorm:"type:uuid"`
	GigTitle    string
	OrderNumber string
	PackageKind string

	Rating    int
	Body      string
	CreatedAt time.Time
}

// TableName specifies the database table name for review rows.
func (ReviewDTO) TableName() string {
	return "reviews"
}

// fromDomain converts a review to its database representation.
func fromDomain(entity *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:          entity.ID().Bytes(),
		OrderID:     entity.OrderID().Bytes(),
		BuyerID:     entity.BuyerID().Bytes(),
		BuyerName:   entity.BuyerName(),
		SellerID:    entity.SellerID().Bytes(),
		SellerName:  entity.SellerName(),
		GigID:       entity.GigID().Bytes(),
		GigTitle:    entity.GigTitle(),
		OrderNumber: entity.OrderNumber(),
		PackageKind: entity.PackageKind(),
		Rating:      entity.Rating(),
		Body:        entity.Body(),
		CreatedAt:   entity.CreatedAt(),
	}
}
