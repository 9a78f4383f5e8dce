package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOverdueOrdersQueryHandler finds in-progress orders whose expected
// delivery date has passed.
type GetOverdueOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueOrdersQueryHandler creates a handler for overdue order scans.
func NewGetOverdueOrdersQueryHandler(db *gorm.DB) GetOverdueOrdersQueryHandler {
	return GetOverdueOrdersQueryHandler{db: db}
}

// Handle executes the scan. Only InProgress orders count: pending orders have
// no committed seller yet, and delivered ones are in the buyer's court.
func (h GetOverdueOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueOrdersQuery,
) ([]GetOverdueOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOverdueOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, order_number, buyer_id, seller_id, expected_delivery_at
		FROM orders
		WHERE status = ? AND expected_delivery_at < NOW()
		ORDER BY expected_delivery_at
	`, int(order.InProgress)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOverdueOrdersQueryResponse
		var id, buyerID, sellerID uuid.UUID

		err = rows.Scan(&id, &resp.OrderNumber, &buyerID, &sellerID, &resp.ExpectedDeliveryAt)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		respBuyerID, idErr := kernel.UUIDFromBytes(buyerID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.BuyerID = respBuyerID

		respSellerID, idErr := kernel.UUIDFromBytes(sellerID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.SellerID = respSellerID

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
