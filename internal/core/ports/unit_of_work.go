package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and repository instances bound to the
// current transaction. Client code must explicitly manage the lifecycle:
// Begin, then Commit or Rollback.
//
// Settlement depends on this boundary: the order's completed-status write and
// the seller's balance credit must commit together or not at all.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// SellerRepository returns a SellerRepository bound to the current transaction.
	SellerRepository() SellerRepository

	// ReviewRepository returns a ReviewRepository bound to the current transaction.
	ReviewRepository() ReviewRepository
}
