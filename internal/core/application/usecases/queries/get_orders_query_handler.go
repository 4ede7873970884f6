package queries

import (
	"context"
	"database/sql"
	"time"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves purchase orders from the database.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to list orders.
// Results are sorted by creation time, newest first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
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
	`
	args := make([]any, 0, 1)

	if query.BuyerID() != nil {
		sqlText += " WHERE buyer_id = ?"
		args = append(args, query.BuyerID().String())
	}
	sqlText += " ORDER BY created_at DESC, id"

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)

	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// scanOrderRow maps one orders row into a response. Shared with the
// single-order query, which selects the same columns.
func scanOrderRow(rows *sql.Rows) (GetOrdersQueryResponse, error) {
	var resp GetOrdersQueryResponse
	var id, stockID, buyerID uuid.UUID
	var logisticsID *uuid.UUID
	var pricePerKg, total decimal.Decimal
	var status int
	var capacityOK *bool
	var createdAt time.Time

	err := rows.Scan(
		&id,
		&stockID,
		&buyerID,
		&resp.QtyKg,
		&pricePerKg,
		&total,
		&status,
		&capacityOK,
		&logisticsID,
		&createdAt,
	)
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}
	listingID, err := kernel.UUIDFromBytes(stockID[:])
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}
	purchaserID, err := kernel.UUIDFromBytes(buyerID[:])
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}

	resp.ID = orderID
	resp.StockID = listingID
	resp.BuyerID = purchaserID
	resp.PricePerKg = pricePerKg
	resp.Total = total
	resp.Status = order.Status(status)
	resp.CapacityOK = capacityOK
	resp.CreatedAt = createdAt

	if logisticsID != nil {
		arrangementID, idErr := kernel.UUIDFromBytes(logisticsID[:])
		if idErr != nil {
			return GetOrdersQueryResponse{}, idErr
		}
		resp.LogisticsID = &arrangementID
	}

	return resp, nil
}
