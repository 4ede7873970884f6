package queries

import (
	"context"

	"agrimarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single purchase order from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to fetch one order.
// Returns an object-not-found error when no order has the given identifier.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			stock_id,
			buyer_id,
			qty_kg,
			price_per_kg,
			total,
			status,
			capacity_ok,
			logistics_id,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Rows()
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrdersQueryResponse{}, err
		}
		return GetOrdersQueryResponse{},
			errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	resp, err := scanOrderRow(rows)
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}

	return resp, rows.Err()
}
