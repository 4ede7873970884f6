// Package ports defines repository interfaces for the agrimarket domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/stock"
)

// StockRepository defines the persistence contract for stock aggregates.
// The fulfillment workflow only reads listings; creation comes from farmer
// actions and listings are never deleted.
type StockRepository interface {
	// Add persists a new stock listing to storage.
	// The listing must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *stock.Stock) error

	// Get retrieves a stock listing by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*stock.Stock, error)
}
