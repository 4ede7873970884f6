package queries

import (
	"context"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/logistics"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetLogisticsQueryHandler retrieves logistics records from the database.
type GetLogisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetLogisticsQueryHandler creates a handler for logistics listing queries.
// Requires a GORM database connection for query execution.
func NewGetLogisticsQueryHandler(db *gorm.DB) GetLogisticsQueryHandler {
	return GetLogisticsQueryHandler{db: db}
}

// Handle executes the query to list logistics records.
// Results are sorted by record ID for consistent output.
func (h GetLogisticsQueryHandler) Handle(
	ctx context.Context,
	query GetLogisticsQuery,
) ([]GetLogisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			mode,
			carrier,
			cost,
			discount,
			status
		FROM logistics
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]GetLogisticsQueryResponse, 0)

	for rows.Next() {
		var resp GetLogisticsQueryResponse
		var id, orderID uuid.UUID
		var mode, status int
		var cost, discount decimal.Decimal

		err = rows.Scan(
			&id,
			&orderID,
			&mode,
			&resp.Carrier,
			&cost,
			&discount,
			&status,
		)
		if err != nil {
			return nil, err
		}

		recordID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		ownerID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}

		resp.ID = recordID
		resp.OrderID = ownerID
		resp.Mode = logistics.Mode(mode)
		resp.Cost = cost
		resp.Discount = discount
		resp.Status = logistics.Status(status)
		records = append(records, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
