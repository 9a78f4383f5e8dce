package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSellerReviewsQueryHandler lists a seller's reviews from the database.
type GetSellerReviewsQueryHandler struct {
	db *gorm.DB
}

// NewGetSellerReviewsQueryHandler creates a handler for seller review listings.
func NewGetSellerReviewsQueryHandler(db *gorm.DB) GetSellerReviewsQueryHandler {
	return GetSellerReviewsQueryHandler{db: db}
}

// Handle executes the query. An unknown seller simply yields an empty list;
// review listings are public and need no existence check.
func (h GetSellerReviewsQueryHandler) Handle(
	ctx context.Context,
	query GetSellerReviewsQuery,
) ([]GetSellerReviewsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	reviews := make([]GetSellerReviewsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id, order_id, order_number,
			buyer_name, gig_title, package_kind,
			rating, body, created_at
		FROM reviews
		WHERE seller_id = ?
		ORDER BY created_at DESC, id
	`, query.SellerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetSellerReviewsQueryResponse
		var id, orderID uuid.UUID

		err = rows.Scan(
			&id, &orderID, &resp.OrderNumber,
			&resp.BuyerName, &resp.GigTitle, &resp.PackageKind,
			&resp.Rating, &resp.Body, &resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		reviewID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = reviewID

		reviewOrderID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OrderID = reviewOrderID

		reviews = append(reviews, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}
