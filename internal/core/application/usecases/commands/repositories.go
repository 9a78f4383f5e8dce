// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// SellerRepoFactory provides access to the seller repository within a transaction.
	SellerRepoFactory interface {
		SellerRepository() ports.SellerRepository
	}

	// ReviewRepoFactory provides access to the review repository within a transaction.
	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by the lifecycle commands that touch nothing but the order aggregate.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PlacementUoW manages the order-placement transaction: it stores the new
	// order and provisions the seller account projection in one commit, so
	// later settlements always find a seller row to credit.
	PlacementUoW interface {
		TxManager
		OrderRepoFactory
		SellerRepoFactory
	}

	// PlacementUoWFactory creates new placement unit of work instances.
	PlacementUoWFactory interface {
		Create() PlacementUoW
	}

	// SettlementUoW manages transactions that move the order AND the seller's
	// balance together. Settlement correctness depends on both writes sharing
	// one transaction.
	SettlementUoW interface {
		TxManager
		OrderRepoFactory
		SellerRepoFactory
	}

	// SettlementUoWFactory creates new settlement unit of work instances.
	SettlementUoWFactory interface {
		Create() SettlementUoW
	}

	// ReviewUoW manages transactions that persist a review and update the
	// seller's rating counters atomically.
	//
	// Example:
	//
	//	uow := factory.Create()
	//	err := uow.Begin(ctx)
	//	defer uow.Rollback(ctx)
	//
	//	reviewRepo := uow.ReviewRepository()
	//	sellerRepo := uow.SellerRepository()
	//	// ... perform operations
	//
	//	err = uow.Commit(ctx)
	ReviewUoW interface {
		TxManager
		OrderRepoFactory
		SellerRepoFactory
		ReviewRepoFactory
	}

	// ReviewUoWFactory creates new review unit of work instances.
	ReviewUoWFactory interface {
		Create() ReviewUoW
	}
)
