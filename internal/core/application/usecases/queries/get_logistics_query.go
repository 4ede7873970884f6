package queries

import (
	"errors"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/logistics"
	"agrimarket/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetLogisticsQueryIsNotConstructed = errors.New(
		"GetLogisticsQuery must be created via NewGetLogisticsQuery constructor",
	)
)

// GetLogisticsQuery retrieves logistics records for tracking and dispatch
// oversight. This is a parameterless query that lists all records.
type GetLogisticsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetLogisticsQuery creates a query to list logistics records.
func NewGetLogisticsQuery() GetLogisticsQuery {
	return GetLogisticsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetLogisticsQueryIsNotConstructed if validation fails.
func (q GetLogisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetLogisticsQueryIsNotConstructed)
}

// GetLogisticsQueryResponse represents one logistics record in the listing.
type GetLogisticsQueryResponse struct {
	ID       kernel.UUID
	OrderID  kernel.UUID
	Mode     logistics.Mode
	Carrier  string
	Cost     decimal.Decimal
	Discount decimal.Decimal
	Status   logistics.Status
}
