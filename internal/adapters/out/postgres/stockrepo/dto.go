// Package stockrepo provides data transfer objects and mapping functions for
// stock listing persistence.
package stockrepo

import (
	"time"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/stock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockDTO represents the database structure for persisting stock listings.
// Rows are append-only from the fulfillment side: the workflow reads listings
// but never decrements or deletes them.
type StockDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	FarmerID    uuid.UUID `gorm:"type:uuid;index"`
	Crop        string    `gorm:"not null;index"`
	Variety     *string
	QtyKg       int `gorm:"not null"`
	Location    *string
	HarvestDate *time.Time
	PricePerKg  decimal.Decimal `gorm:"type:decimal(12,2)"`
	Status      int
}

// TableName specifies the database table name for stock entities.
// Overrides GORM's default naming convention to use "stocks".
func (StockDTO) TableName() string {
	return "stocks"
}

// fromDomain converts a stock domain aggregate to its database representation.
func fromDomain(aggregate *stock.Stock) StockDTO {
	return StockDTO{
		ID:          aggregate.ID().Bytes(),
		FarmerID:    aggregate.FarmerID().Bytes(),
		Crop:        aggregate.Crop(),
		Variety:     aggregate.Variety(),
		QtyKg:       aggregate.QtyKg(),
		Location:    aggregate.Location(),
		HarvestDate: aggregate.HarvestDate(),
		PricePerKg:  aggregate.PricePerKg(),
		Status:      int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to a stock domain aggregate using RestoreStock.
func toDomain(dto StockDTO) (*stock.Stock, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	farmerID, err := kernel.UUIDFromBytes(dto.FarmerID[:])
	if err != nil {
		return nil, err
	}

	return stock.RestoreStock(
		id, farmerID,
		dto.Crop,
		dto.Variety,
		dto.QtyKg,
		dto.Location,
		dto.HarvestDate,
		dto.PricePerKg,
		stock.Status(dto.Status),
	)
}
