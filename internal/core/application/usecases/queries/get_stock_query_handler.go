package queries

import (
	"context"
	"time"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/stock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetStockQueryHandler retrieves browsable stock listings from the database.
// Only listings with remaining quantity are returned.
type GetStockQueryHandler struct {
	db *gorm.DB
}

// NewGetStockQueryHandler creates a handler for stock browse queries.
// Requires a GORM database connection for query execution.
func NewGetStockQueryHandler(db *gorm.DB) GetStockQueryHandler {
	return GetStockQueryHandler{db: db}
}

// Handle executes the query to retrieve stock listings.
// Applies the optional crop and location filters and sorts results by crop
// name, then ID, for consistent output.
func (h GetStockQueryHandler) Handle(
	ctx context.Context,
	query GetStockQuery,
) ([]GetStockQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			farmer_id,
			crop,
			variety,
			qty_kg,
			location,
			harvest_date,
			price_per_kg,
			status
		FROM stocks
		WHERE qty_kg > 0
	`
	args := make([]any, 0, 2)

	if query.Crop() != "" {
		sql += " AND crop ILIKE ?"
		args = append(args, "%"+query.Crop()+"%")
	}
	if query.Location() != "" {
		sql += " AND location = ?"
		args = append(args, query.Location())
	}
	sql += " ORDER BY crop, id"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := make([]GetStockQueryResponse, 0)

	for rows.Next() {
		var resp GetStockQueryResponse
		var id, farmerID uuid.UUID
		var harvestDate *time.Time
		var pricePerKg decimal.Decimal
		var status int

		err = rows.Scan(
			&id,
			&farmerID,
			&resp.Crop,
			&resp.Variety,
			&resp.QtyKg,
			&resp.Location,
			&harvestDate,
			&pricePerKg,
			&status,
		)
		if err != nil {
			return nil, err
		}

		stockID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		ownerID, idErr := kernel.UUIDFromBytes(farmerID[:])
		if idErr != nil {
			return nil, idErr
		}

		resp.ID = stockID
		resp.FarmerID = ownerID
		resp.HarvestDate = harvestDate
		resp.PricePerKg = pricePerKg
		resp.Status = stock.Status(status)
		listings = append(listings, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return listings, nil
}
