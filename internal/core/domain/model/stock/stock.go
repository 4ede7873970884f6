package stock

import (
	"errors"
	"fmt"
	"time"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrStockIsNotConstructed is returned when a Stock instance was not created
	// through the NewStock or RestoreStock factory methods.
	ErrStockIsNotConstructed = errors.New("Stock must be created via NewStock or RestoreStock constructor")
)

// Stock represents a farmer's listed, sellable quantity of a crop at a price.
// Stock rows are never physically deleted and their quantity is not decremented
// by order fulfillment; remaining capacity is derived from committed orders.
//
// Invariants:
//   - Must reference a valid owning farmer
//   - Crop name is required
//   - Available quantity is a non-negative integer (kilograms)
//   - Price per kg is non-negative
//   - Status is one of the closed availability states
type Stock struct {
	id            kernel.UUID
	farmerID      kernel.UUID
	crop          string
	variety       *string
	qtyKg         int
	location      *string
	harvestDate   *time.Time
	pricePerKg    decimal.Decimal
	status        Status
	isConstructed bool
}

// NewStock creates a new stock listing with validation. Optional descriptive
// fields (variety, location, harvest date) may be nil.
func NewStock(
	id, farmerID kernel.UUID,
	crop string,
	variety *string,
	qtyKg int,
	location *string,
	harvestDate *time.Time,
	pricePerKg decimal.Decimal,
	status Status,
) (*Stock, error) {
	s := &Stock{
		variety:       variety,
		location:      location,
		harvestDate:   harvestDate,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setFarmerID(farmerID),
		s.setCrop(crop),
		s.setQtyKg(qtyKg),
		s.setPricePerKg(pricePerKg),
		s.setStatus(status),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreStock reconstructs a Stock from persistence.
// Used by repository implementations when mapping database rows back to the domain.
func RestoreStock(
	id, farmerID kernel.UUID,
	crop string,
	variety *string,
	qtyKg int,
	location *string,
	harvestDate *time.Time,
	pricePerKg decimal.Decimal,
	status Status,
) (*Stock, error) {
	return NewStock(id, farmerID, crop, variety, qtyKg, location, harvestDate, pricePerKg, status)
}

// Validate ensures the Stock instance was properly constructed through a factory.
func (s *Stock) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStockIsNotConstructed
	}

	return nil
}

// IsEqual compares two stock listings by their unique identifiers.
func (s *Stock) IsEqual(other *Stock) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the stock listing's unique identifier.
func (s *Stock) ID() kernel.UUID {
	return s.id
}

// FarmerID returns the owning farmer's identifier.
func (s *Stock) FarmerID() kernel.UUID {
	return s.farmerID
}

// Crop returns the crop name.
func (s *Stock) Crop() string {
	return s.crop
}

// Variety returns the optional crop variety.
func (s *Stock) Variety() *string {
	return s.variety
}

// QtyKg returns the listed available quantity in kilograms.
func (s *Stock) QtyKg() int {
	return s.qtyKg
}

// Location returns the optional listing location.
func (s *Stock) Location() *string {
	return s.location
}

// HarvestDate returns the optional harvest date.
func (s *Stock) HarvestDate() *time.Time {
	return s.harvestDate
}

// PricePerKg returns the listed unit price.
func (s *Stock) PricePerKg() decimal.Decimal {
	return s.pricePerKg
}

// Status returns the availability status of the listing.
func (s *Stock) Status() Status {
	return s.status
}

func (s *Stock) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Stock) setFarmerID(farmerID kernel.UUID) error {
	if err := farmerID.Validate(); err != nil {
		return err
	}
	s.farmerID = farmerID
	return nil
}

func (s *Stock) setCrop(crop string) error {
	if crop == "" {
		return errs.NewValueIsRequiredError("crop")
	}
	s.crop = crop
	return nil
}

func (s *Stock) setQtyKg(qtyKg int) error {
	if qtyKg < 0 {
		return errs.NewValueIsInvalidErrorWithCause("qty kg", fmt.Errorf("%d is negative", qtyKg))
	}
	s.qtyKg = qtyKg
	return nil
}

func (s *Stock) setPricePerKg(pricePerKg decimal.Decimal) error {
	if pricePerKg.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"price per kg",
			fmt.Errorf("%s is negative", pricePerKg.String()),
		)
	}
	s.pricePerKg = pricePerKg
	return nil
}

func (s *Stock) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}
