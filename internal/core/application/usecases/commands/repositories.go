// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"agrimarket/internal/core/ports"
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

	// StockRepoFactory provides access to the stock repository within a transaction.
	StockRepoFactory interface {
		StockRepository() ports.StockRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// LogisticsRepoFactory provides access to the logistics repository within a transaction.
	LogisticsRepoFactory interface {
		LogisticsRepository() ports.LogisticsRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// StockUoW manages transactions for stock-only operations.
	StockUoW interface {
		TxManager
		StockRepoFactory
	}

	// StockUoWFactory creates new stock unit of work instances.
	StockUoWFactory interface {
		Create() StockUoW
	}

	// OrderUoW manages transactions for order creation, which must resolve
	// the referenced stock listing and buyer before persisting the order.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		StockRepoFactory
		UserRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CapacityUoW manages transactions for capacity confirmation, which reads
	// the stock listing and committed quantities and updates the order.
	CapacityUoW interface {
		TxManager
		OrderRepoFactory
		StockRepoFactory
	}

	// CapacityUoWFactory creates new capacity unit of work instances.
	CapacityUoWFactory interface {
		Create() CapacityUoW
	}

	// LogisticsUoW manages transactions that coordinate changes between an
	// order and its logistics record. Used for logistics assignment and
	// status updates, where the two aggregates must never diverge.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   logisticsRepo := uow.LogisticsRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	LogisticsUoW interface {
		TxManager
		OrderRepoFactory
		LogisticsRepoFactory
	}

	// LogisticsUoWFactory creates new logistics unit of work instances.
	LogisticsUoWFactory interface {
		Create() LogisticsUoW
	}
)
