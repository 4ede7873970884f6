package queries

import (
	"context"

	"agrimarket/internal/core/domain/model/logistics"
	"agrimarket/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetKPIReportQueryHandler computes marketplace KPIs from the database.
// All figures are derived on demand; nothing is precomputed or cached.
type GetKPIReportQueryHandler struct {
	db *gorm.DB
}

// NewGetKPIReportQueryHandler creates a handler for KPI report queries.
// Requires a GORM database connection for query execution.
func NewGetKPIReportQueryHandler(db *gorm.DB) GetKPIReportQueryHandler {
	return GetKPIReportQueryHandler{db: db}
}

// Handle executes the KPI computation.
// Delivered volume, order count, and revenue come from delivered orders;
// transport-mode counts cover every logistics record; average prices are
// grouped by crop over every stock listing. An empty database produces a
// zero-valued report, not an error.
func (h GetKPIReportQueryHandler) Handle(
	ctx context.Context,
	query GetKPIReportQuery,
) (GetKPIReportQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetKPIReportQueryResponse{}, err
	}

	resp := GetKPIReportQueryResponse{
		TotalRevenue:        decimal.Zero,
		AveragePricesByCrop: make([]CropAveragePrice, 0),
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(qty_kg), 0),
			COUNT(*),
			COALESCE(SUM(total), 0)
		FROM orders
		WHERE status = ?
	`, order.Delivered).Row()

	var totalRevenue decimal.Decimal
	if err := row.Scan(&resp.KgDelivered, &resp.OrdersDelivered, &totalRevenue); err != nil {
		return GetKPIReportQueryResponse{}, err
	}
	resp.TotalRevenue = totalRevenue.Round(2)

	modeRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			mode,
			COUNT(*)
		FROM logistics
		GROUP BY mode
	`).Rows()
	if err != nil {
		return GetKPIReportQueryResponse{}, err
	}
	defer modeRows.Close()

	for modeRows.Next() {
		var mode, count int
		if err = modeRows.Scan(&mode, &count); err != nil {
			return GetKPIReportQueryResponse{}, err
		}

		switch logistics.Mode(mode) {
		case logistics.BuyerArranged:
			resp.BuyerArrangedLogistics = count
		case logistics.ExternalCourier:
			resp.ExternalCourier = count
		}
	}
	if err = modeRows.Err(); err != nil {
		return GetKPIReportQueryResponse{}, err
	}

	priceRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			crop,
			AVG(price_per_kg)
		FROM stocks
		GROUP BY crop
		ORDER BY crop
	`).Rows()
	if err != nil {
		return GetKPIReportQueryResponse{}, err
	}
	defer priceRows.Close()

	for priceRows.Next() {
		var entry CropAveragePrice
		var avgPrice decimal.Decimal
		if err = priceRows.Scan(&entry.Crop, &avgPrice); err != nil {
			return GetKPIReportQueryResponse{}, err
		}

		entry.AveragePrice = avgPrice.Round(2)
		resp.AveragePricesByCrop = append(resp.AveragePricesByCrop, entry)
	}
	if err = priceRows.Err(); err != nil {
		return GetKPIReportQueryResponse{}, err
	}

	return resp, nil
}
