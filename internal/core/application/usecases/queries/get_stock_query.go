// Package queries contains read-only operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Handlers bypass the domain model and read projections straight from the database.
package queries

import (
	"errors"
	"time"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/stock"
	"agrimarket/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetStockQueryIsNotConstructed = errors.New(
		"GetStockQuery must be created via NewGetStockQuery constructor",
	)
)

// GetStockQuery retrieves stock listings that still have quantity on offer.
// Both filters are optional: crop matches as a case-insensitive substring,
// location matches exactly.
//
// Example:
//
//	query := NewGetStockQuery("tomato", "")
//	handler := NewGetStockQueryHandler(db)
//
//	listings, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get stock: %w", err)
//	}
//
//	fmt.Printf("Found %d listings\n", len(listings))
type GetStockQuery struct {
	crop     string
	location string

	guard guard.ConstructorGuard
}

// NewGetStockQuery creates a query for browsing stock listings.
// Empty filter values mean no filtering on that field.
func NewGetStockQuery(crop, location string) GetStockQuery {
	return GetStockQuery{
		crop:     crop,
		location: location,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStockQueryIsNotConstructed if validation fails.
func (q GetStockQuery) Validate() error {
	return q.guard.Validate(ErrGetStockQueryIsNotConstructed)
}

// Crop returns the optional crop substring filter.
func (q GetStockQuery) Crop() string {
	return q.crop
}

// Location returns the optional exact location filter.
func (q GetStockQuery) Location() string {
	return q.location
}

// GetStockQueryResponse represents one stock listing in the browse result.
type GetStockQueryResponse struct {
	ID          kernel.UUID
	FarmerID    kernel.UUID
	Crop        string
	Variety     *string
	QtyKg       int
	Location    *string
	HarvestDate *time.Time
	PricePerKg  decimal.Decimal
	Status      stock.Status
}
