package queries

import (
	"errors"
	"time"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/order"
	"agrimarket/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves purchase orders, optionally filtered by buyer.
//
// Example:
//
//	query := NewGetOrdersQuery(nil)
//	handler := NewGetOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
type GetOrdersQuery struct {
	buyerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to list orders.
// A nil buyerID lists orders for all buyers.
func NewGetOrdersQuery(buyerID *kernel.UUID) (GetOrdersQuery, error) {
	if buyerID != nil {
		if err := buyerID.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		buyerID: buyerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// BuyerID returns the optional buyer filter.
func (q GetOrdersQuery) BuyerID() *kernel.UUID {
	return q.buyerID
}

// GetOrdersQueryResponse represents one order in the listing result.
type GetOrdersQueryResponse struct {
	ID          kernel.UUID
	StockID     kernel.UUID
	BuyerID     kernel.UUID
	QtyKg       int
	PricePerKg  decimal.Decimal
	Total       decimal.Decimal
	Status      order.Status
	CapacityOK  *bool
	LogisticsID *kernel.UUID
	CreatedAt   time.Time
}
