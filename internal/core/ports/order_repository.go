package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Status-changing writes go through UpdateWithExpectedStatus, which conditions
// the write on the status the caller read (optimistic concurrency): a losing
// concurrent writer receives errs.ErrConcurrencyConflict instead of silently
// overwriting. Delivery-record appends are commutative inserts and need no
// such guard because only the seller ever appends them.
type OrderRepository interface {
	// Add persists a new order aggregate. The order must be valid and not
	// already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ErrObjectNotFound when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateWithExpectedStatus persists the aggregate's lifecycle fields on
	// the condition that the stored status still equals expectedStatus.
	// Returns errs.ErrConcurrencyConflict when the condition no longer holds.
	UpdateWithExpectedStatus(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error

	// AppendDeliveryFile adds one uploaded deliverable to the order's
	// delivery record. Safe under concurrent appends from the seller.
	AppendDeliveryFile(ctx context.Context, orderID kernel.UUID, artifact order.Artifact) error

	// AppendDeliveryLink adds one shared link to the order's delivery record.
	AppendDeliveryLink(ctx context.Context, orderID kernel.UUID, link string) error

	// SetDeliveryNote overwrites the order's delivery note (last write wins;
	// only the seller writes it).
	SetDeliveryNote(ctx context.Context, orderID kernel.UUID, note string) error
}
