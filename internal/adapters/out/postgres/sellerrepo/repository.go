package sellerrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/seller"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSellerRepository implements ports.SellerRepository using GORM.
type GormSellerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSellerRepository creates a new GORM seller repository.
func NewGormSellerRepository(db *gorm.DB, tracker aggregateTracker) *GormSellerRepository {
	return &GormSellerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new seller account to the database.
func (r *GormSellerRepository) Add(ctx context.Context, account *seller.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}

	dto := fromDomain(account)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(account.ID(), account)
	return nil
}

// Ensure inserts the seller account unless a row with its id already exists.
// ON CONFLICT DO NOTHING keeps the existing row's balance and rating counters
// intact, so re-provisioning on every order placement is safe.
func (r *GormSellerRepository) Ensure(ctx context.Context, account *seller.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}

	dto := fromDomain(account)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Create(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected > 0 {
		r.tracker.TrackAggregate(account.ID(), account)
	}
	return nil
}

// Get retrieves a seller account by user ID.
func (r *GormSellerRepository) Get(ctx context.Context, id kernel.UUID) (*seller.Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SellerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("seller", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// CreditEarnings adds the settled amount to the seller's balance and lifetime
// earnings in one atomic SQL update. No read-modify-write: concurrent credits
// commute at the database.
func (r *GormSellerRepository) CreditEarnings(
	ctx context.Context,
	sellerID kernel.UUID,
	amount kernel.Money,
) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&SellerDTO{}).
		Where("id = ?", sellerID.Bytes()).
		Updates(map[string]any{
			"available_balance_cents": gorm.Expr("available_balance_cents + ?", amount.Cents()),
			"total_earnings_cents":    gorm.Expr("total_earnings_cents + ?", amount.Cents()),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("seller", sellerID.String())
	}

	return nil
}

// AddRating folds one review rating into the seller's counters in one atomic
// SQL update. The average is never stored, only derived on read.
func (r *GormSellerRepository) AddRating(ctx context.Context, sellerID kernel.UUID, rating int) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}
	if rating < seller.MinRating || rating > seller.MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, seller.MinRating, seller.MaxRating)
	}

	result := r.db.WithContext(ctx).
		Model(&SellerDTO{}).
		Where("id = ?", sellerID.Bytes()).
		Updates(map[string]any{
			"rating_sum":   gorm.Expr("rating_sum + ?", rating),
			"rating_count": gorm.Expr("rating_count + 1"),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("seller", sellerID.String())
	}

	return nil
}
