package ports

import (
	"context"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their lifecycle state.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The write is guarded by the aggregate's version: when a concurrent
	// operation already advanced the stored row, Update fails with a
	// conflict error and nothing is written. Callers must run Update inside
	// a unit of work so a conflict rolls back companion writes.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetCommittedKgForStock sums the ordered kilograms already committed
	// against a stock listing. An order commits its quantity once its
	// capacity has been confirmed (any status except PendingCapacity);
	// stock rows themselves are never decremented.
	GetCommittedKgForStock(ctx context.Context, stockID kernel.UUID) (int, error)
}
