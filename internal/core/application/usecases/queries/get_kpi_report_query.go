package queries

import (
	"errors"

	"agrimarket/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetKPIReportQueryIsNotConstructed = errors.New(
		"GetKPIReportQuery must be created via NewGetKPIReportQuery constructor",
	)
)

// GetKPIReportQuery computes marketplace performance indicators from the
// current order, logistics, and stock records. This is a parameterless
// query; an empty database yields a report of zeros.
//
// Example:
//
//	query := NewGetKPIReportQuery()
//	handler := NewGetKPIReportQueryHandler(db)
//
//	report, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to compute KPIs: %w", err)
//	}
//
//	fmt.Printf("%d kg delivered across %d orders\n",
//	    report.KgDelivered, report.OrdersDelivered)
type GetKPIReportQuery struct {
	guard guard.ConstructorGuard
}

// NewGetKPIReportQuery creates a query to compute the KPI report.
func NewGetKPIReportQuery() GetKPIReportQuery {
	return GetKPIReportQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetKPIReportQueryIsNotConstructed if validation fails.
func (q GetKPIReportQuery) Validate() error {
	return q.guard.Validate(ErrGetKPIReportQueryIsNotConstructed)
}

// CropAveragePrice is the average listed unit price for one crop.
type CropAveragePrice struct {
	Crop         string
	AveragePrice decimal.Decimal
}

// GetKPIReportQueryResponse aggregates fulfillment performance indicators.
// Volume, order count, and revenue cover delivered orders only; the
// transport-mode counts cover every logistics record. Revenue is rounded
// to two decimal places.
type GetKPIReportQueryResponse struct {
	KgDelivered            int
	OrdersDelivered        int
	BuyerArrangedLogistics int
	ExternalCourier        int
	TotalRevenue           decimal.Decimal
	AveragePricesByCrop    []CropAveragePrice
}
