package ports

import (
	"context"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/logistics"
)

// LogisticsRepository defines the persistence contract for logistics aggregates.
// A logistics record is one-to-one with its order; the application layer
// enforces that at most one record is ever created per order.
type LogisticsRepository interface {
	// Add persists a new logistics record to storage.
	// The record must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *logistics.Logistics) error

	// Update persists changes to an existing logistics record.
	Update(ctx context.Context, aggregate *logistics.Logistics) error

	// Get retrieves a logistics record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*logistics.Logistics, error)
}
