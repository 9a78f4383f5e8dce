package reviewrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"

	"gorm.io/gorm"
)

// GormReviewRepository implements ports.ReviewRepository using GORM.
//
// The connection must be opened with TranslateError enabled so unique
// violations surface as gorm.ErrDuplicatedKey.
type GormReviewRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormReviewRepository creates a new GORM review repository.
func NewGormReviewRepository(db *gorm.DB, tracker aggregateTracker) *GormReviewRepository {
	return &GormReviewRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new review. A concurrent duplicate for the same (order, buyer)
// pair hits the unique index and comes back as review.ErrAlreadyReviewed.
func (r *GormReviewRepository) Add(ctx context.Context, entity *review.Review) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return review.ErrAlreadyReviewed
		}
		return err
	}

	r.tracker.TrackAggregate(entity.ID(), entity)
	return nil
}

// ExistsForOrder reports whether the buyer has already reviewed the order.
func (r *GormReviewRepository) ExistsForOrder(ctx context.Context, orderID, buyerID kernel.UUID) (bool, error) {
	if err := errors.Join(orderID.Validate(), buyerID.Validate()); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&ReviewDTO{}).
		Where("order_id = ? AND buyer_id = ?", orderID.Bytes(), buyerID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
