package http

import (
	"time"

	"agrimarket/internal/core/application/usecases/queries"
	"agrimarket/internal/core/domain/model/logistics"
	"agrimarket/internal/core/domain/model/order"
	"agrimarket/internal/core/domain/model/stock"

	"github.com/shopspring/decimal"
)

// harvestDateLayout is the wire format for harvest dates.
const harvestDateLayout = "2006-01-02"

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewStock is the request body for publishing a stock listing.
type NewStock struct {
	FarmerID    string          `json:"farmer_id"`
	Crop        string          `json:"crop"`
	Variety     *string         `json:"variety,omitempty"`
	QtyKg       int             `json:"qty_kg"`
	Location    *string         `json:"location,omitempty"`
	HarvestDate *string         `json:"harvest_date,omitempty"`
	PricePerKg  decimal.Decimal `json:"price_per_kg"`
}

// Stock is the JSON representation of a stock listing.
type Stock struct {
	ID          string          `json:"id"`
	FarmerID    string          `json:"farmer_id"`
	Crop        string          `json:"crop"`
	Variety     *string         `json:"variety,omitempty"`
	QtyKg       int             `json:"qty_kg"`
	Location    *string         `json:"location,omitempty"`
	HarvestDate *string         `json:"harvest_date,omitempty"`
	PricePerKg  decimal.Decimal `json:"price_per_kg"`
	Status      string          `json:"status"`
}

// NewOrder is the request body for placing a purchase order.
type NewOrder struct {
	StockID    string          `json:"stock_id"`
	BuyerID    string          `json:"buyer_id"`
	QtyKg      int             `json:"qty_kg"`
	PricePerKg decimal.Decimal `json:"price_per_kg"`
}

// Order is the JSON representation of a purchase order.
type Order struct {
	ID          string          `json:"id"`
	StockID     string          `json:"stock_id"`
	BuyerID     string          `json:"buyer_id"`
	QtyKg       int             `json:"qty_kg"`
	PricePerKg  decimal.Decimal `json:"price_per_kg"`
	Total       decimal.Decimal `json:"total"`
	Status      string          `json:"status"`
	CapacityOK  *bool           `json:"capacity_ok"`
	LogisticsID *string         `json:"logistics_id"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewLogistics is the request body for arranging transport for an order.
type NewLogistics struct {
	Mode     string          `json:"mode"`
	Carrier  string          `json:"carrier"`
	Cost     decimal.Decimal `json:"cost"`
	Discount decimal.Decimal `json:"discount"`
}

// Logistics is the JSON representation of a transport arrangement.
type Logistics struct {
	ID       string          `json:"id"`
	OrderID  string          `json:"order_id"`
	Mode     string          `json:"mode"`
	Carrier  string          `json:"carrier"`
	Cost     decimal.Decimal `json:"cost"`
	Discount decimal.Decimal `json:"discount"`
	Status   string          `json:"status"`
}

// LogisticsStatusUpdate is the request body for advancing a transport status.
type LogisticsStatusUpdate struct {
	Status string `json:"status"`
}

// KPIReport is the JSON representation of the fulfillment KPI report.
type KPIReport struct {
	KgDelivered            int                        `json:"kg_delivered"`
	OrdersDelivered        int                        `json:"orders_delivered"`
	BuyerArrangedLogistics int                        `json:"buyer_arranged_logistics"`
	ExternalCourier        int                        `json:"external_courier"`
	TotalRevenue           decimal.Decimal            `json:"total_revenue"`
	AveragePricesByCrop    map[string]decimal.Decimal `json:"average_prices_by_crop"`
}

func stockFromDomain(listing *stock.Stock) Stock {
	resp := Stock{
		ID:         listing.ID().String(),
		FarmerID:   listing.FarmerID().String(),
		Crop:       listing.Crop(),
		Variety:    listing.Variety(),
		QtyKg:      listing.QtyKg(),
		Location:   listing.Location(),
		PricePerKg: listing.PricePerKg(),
		Status:     listing.Status().String(),
	}
	if listing.HarvestDate() != nil {
		formatted := listing.HarvestDate().Format(harvestDateLayout)
		resp.HarvestDate = &formatted
	}
	return resp
}

func stockFromQuery(row queries.GetStockQueryResponse) Stock {
	resp := Stock{
		ID:         row.ID.String(),
		FarmerID:   row.FarmerID.String(),
		Crop:       row.Crop,
		Variety:    row.Variety,
		QtyKg:      row.QtyKg,
		Location:   row.Location,
		PricePerKg: row.PricePerKg,
		Status:     row.Status.String(),
	}
	if row.HarvestDate != nil {
		formatted := row.HarvestDate.Format(harvestDateLayout)
		resp.HarvestDate = &formatted
	}
	return resp
}

func orderFromDomain(purchase *order.Order) Order {
	resp := Order{
		ID:         purchase.ID().String(),
		StockID:    purchase.StockID().String(),
		BuyerID:    purchase.BuyerID().String(),
		QtyKg:      purchase.QtyKg(),
		PricePerKg: purchase.PricePerKg(),
		Total:      purchase.Total(),
		Status:     purchase.Status().String(),
		CapacityOK: purchase.CapacityOK(),
		CreatedAt:  purchase.CreatedAt(),
	}
	if purchase.Logistics() != nil {
		arrangementID := purchase.Logistics().String()
		resp.LogisticsID = &arrangementID
	}
	return resp
}

func orderFromQuery(row queries.GetOrdersQueryResponse) Order {
	resp := Order{
		ID:         row.ID.String(),
		StockID:    row.StockID.String(),
		BuyerID:    row.BuyerID.String(),
		QtyKg:      row.QtyKg,
		PricePerKg: row.PricePerKg,
		Total:      row.Total,
		Status:     row.Status.String(),
		CapacityOK: row.CapacityOK,
		CreatedAt:  row.CreatedAt,
	}
	if row.LogisticsID != nil {
		arrangementID := row.LogisticsID.String()
		resp.LogisticsID = &arrangementID
	}
	return resp
}

func logisticsFromDomain(arrangement *logistics.Logistics) Logistics {
	return Logistics{
		ID:       arrangement.ID().String(),
		OrderID:  arrangement.OrderID().String(),
		Mode:     arrangement.Mode().String(),
		Carrier:  arrangement.Carrier(),
		Cost:     arrangement.Cost(),
		Discount: arrangement.Discount(),
		Status:   arrangement.Status().String(),
	}
}

func logisticsFromQuery(row queries.GetLogisticsQueryResponse) Logistics {
	return Logistics{
		ID:       row.ID.String(),
		OrderID:  row.OrderID.String(),
		Mode:     row.Mode.String(),
		Carrier:  row.Carrier,
		Cost:     row.Cost,
		Discount: row.Discount,
		Status:   row.Status.String(),
	}
}

func kpiReportFromQuery(report queries.GetKPIReportQueryResponse) KPIReport {
	averages := make(map[string]decimal.Decimal, len(report.AveragePricesByCrop))
	for _, entry := range report.AveragePricesByCrop {
		averages[entry.Crop] = entry.AveragePrice
	}

	return KPIReport{
		KgDelivered:            report.KgDelivered,
		OrdersDelivered:        report.OrdersDelivered,
		BuyerArrangedLogistics: report.BuyerArrangedLogistics,
		ExternalCourier:        report.ExternalCourier,
		TotalRevenue:           report.TotalRevenue,
		AveragePricesByCrop:    averages,
	}
}
