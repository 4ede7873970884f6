// Package logisticsrepo provides data transfer objects and mapping functions
// for logistics record persistence.
package logisticsrepo

import (
	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/logistics"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LogisticsDTO represents the database structure for persisting logistics records.
// The unique index on order_id enforces the one-record-per-order rule at the
// storage level, backing up the check done in the application layer.
type LogisticsDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Mode     int       `gorm:"not null"`
	Carrier  string
	Cost     decimal.Decimal `gorm:"type:decimal(12,2)"`
	Discount decimal.Decimal `gorm:"type:decimal(5,4)"`
	Status   int             `gorm:"index"`
}

// TableName specifies the database table name for logistics entities.
// Overrides GORM's default naming convention to use "logistics".
func (LogisticsDTO) TableName() string {
	return "logistics"
}

// fromDomain converts a logistics domain aggregate to its database representation.
func fromDomain(aggregate *logistics.Logistics) LogisticsDTO {
	return LogisticsDTO{
		ID:       aggregate.ID().Bytes(),
		OrderID:  aggregate.OrderID().Bytes(),
		Mode:     int(aggregate.Mode()),
		Carrier:  aggregate.Carrier(),
		Cost:     aggregate.Cost(),
		Discount: aggregate.Discount(),
		Status:   int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to a logistics domain aggregate using RestoreLogistics.
func toDomain(dto LogisticsDTO) (*logistics.Logistics, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return logistics.RestoreLogistics(
		id, orderID,
		logistics.Mode(dto.Mode),
		dto.Carrier,
		dto.Cost, dto.Discount,
		logistics.Status(dto.Status),
	)
}
