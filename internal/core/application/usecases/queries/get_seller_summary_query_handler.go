package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSellerSummaryQueryHandler reads a seller's summary from the database.
// The average rating is derived in SQL from the rating sum and count; no
// stored mean exists to drift out of sync with the review table.
type GetSellerSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetSellerSummaryQueryHandler creates a handler for seller summary reads.
func NewGetSellerSummaryQueryHandler(db *gorm.DB) GetSellerSummaryQueryHandler {
	return GetSellerSummaryQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ErrObjectNotFound for an unknown seller.
func (h GetSellerSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetSellerSummaryQuery,
) (*GetSellerSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var row struct {
		ID                    uuid.UUID
		DisplayName           string
		AvailableBalanceCents int64
		TotalEarningsCents    int64
		RatingCount           int64
		AverageRating         float64
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			display_name,
			available_balance_cents,
			total_earnings_cents,
			rating_count,
			CASE
				WHEN rating_count = 0 THEN 0
				ELSE rating_sum::double precision / rating_count
			END AS average_rating
		FROM sellers
		WHERE id = ?
	`, query.SellerID().Bytes()).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, errs.NewObjectNotFoundError("seller", query.SellerID().String())
	}

	sellerID, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return nil, err
	}

	return &GetSellerSummaryQueryResponse{
		SellerID:              sellerID,
		DisplayName:           row.DisplayName,
		AvailableBalanceCents: row.AvailableBalanceCents,
		TotalEarningsCents:    row.TotalEarningsCents,
		ReviewCount:           row.RatingCount,
		AverageRating:         row.AverageRating,
	}, nil
}
