// Package queries contains the read side of the CQRS split. Query handlers
// run raw SQL against the database and return plain response structs; they
// never load aggregates or take transactions.
package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its full delivery record.
// Only the order's buyer or seller may read it.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID, callerID)
//	if err != nil {
//	    return err
//	}
//	resp, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderID  kernel.UUID
	callerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order.
func NewGetOrderQuery(orderID, callerID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), callerID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID:  orderID,
		callerID: callerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// CallerID returns the user asking for the order.
func (q GetOrderQuery) CallerID() kernel.UUID {
	return q.callerID
}

// DeliveryFileResponse is one uploaded deliverable in the delivery record.
type DeliveryFileResponse struct {
	Name       string
	URL        string
	ByteSize   int64
	MediaType  string
	UploadedAt time.Time
}

// GetOrderQueryResponse is the full order projection, including money split,
// lifecycle timestamps, and the delivery record.
type GetOrderQueryResponse struct {
	ID          kernel.UUID
	OrderNumber string

	BuyerID    kernel.UUID
	BuyerName  string
	SellerID   kernel.UUID
	SellerName string

	GigID    kernel.UUID
	GigTitle string

	PackageKind  string
	PackageTitle string
	DeliveryDays int
	MaxRevisions int

	PriceCents      int64
	ServiceFeeCents int64
	TotalCents      int64

	PaymentStatus string
	PaymentMethod string

	Requirements string

	Status        string
	RevisionCount int

	CreatedAt          time.Time
	ExpectedDeliveryAt time.Time
	DeliveredAt        *time.Time
	CompletedAt        *time.Time

	LastRevisionAt      *time.Time
	LastRevisionMessage string

	DeliveryNote   string
	ConversationID string

	DeliveryFiles []DeliveryFileResponse
	DeliveryLinks []string
}
