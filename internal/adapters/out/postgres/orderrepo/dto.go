// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with indexes for
// querying by stock listing, buyer, and lifecycle status. The version column
// backs the optimistic concurrency guard on updates.
type OrderDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	StockID     uuid.UUID       `gorm:"type:uuid;index"`
	BuyerID     uuid.UUID       `gorm:"type:uuid;index"`
	QtyKg       int             `gorm:"not null"`
	PricePerKg  decimal.Decimal `gorm:"type:decimal(12,2)"`
	Total       decimal.Decimal `gorm:"type:decimal(14,2)"`
	Status      int             `gorm:"index"`
	CapacityOK  *bool
	LogisticsID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time
	Version     int `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the optional logistics reference.
func fromDomain(aggregate *order.Order) OrderDTO {
	var logisticsID *uuid.UUID
	if id := aggregate.Logistics(); id != nil {
		raw := id.Bytes()
		logisticsID = &raw
	}

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		StockID:     aggregate.StockID().Bytes(),
		BuyerID:     aggregate.BuyerID().Bytes(),
		QtyKg:       aggregate.QtyKg(),
		PricePerKg:  aggregate.PricePerKg(),
		Total:       aggregate.Total(),
		Status:      int(aggregate.Status()),
		CapacityOK:  aggregate.CapacityOK(),
		LogisticsID: logisticsID,
		CreatedAt:   aggregate.CreatedAt(),
		Version:     aggregate.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including the frozen total and version using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	stockID, err := kernel.UUIDFromBytes(dto.StockID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	var logisticsID *kernel.UUID
	if dto.LogisticsID != nil {
		lID, logisticsErr := kernel.UUIDFromBytes((*dto.LogisticsID)[:])
		if logisticsErr != nil {
			return nil, logisticsErr
		}

		logisticsID = &lID
	}

	return order.RestoreOrder(
		id, stockID, buyerID,
		dto.QtyKg,
		dto.PricePerKg, dto.Total,
		order.Status(dto.Status),
		dto.CapacityOK,
		logisticsID,
		dto.CreatedAt,
		dto.Version,
	)
}
