package commands

import (
	"errors"
	"fmt"
	"time"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/pkg/errs"
	"agrimarket/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrAddStockCommandIsNotConstructed = errors.New(
		"AddStockCommand must be created via NewAddStockCommand constructor",
	)
)

// AddStockCommand requests publication of a farmer's crop listing.
// Optional descriptive fields (variety, location, harvest date) may be nil.
type AddStockCommand struct { //nolint:recvcheck //using for validation
	stockID     kernel.UUID
	farmerID    kernel.UUID
	crop        string
	variety     *string
	qtyKg       int
	location    *string
	harvestDate *time.Time
	pricePerKg  decimal.Decimal

	guard guard.ConstructorGuard
}

// NewAddStockCommand creates a command to publish a stock listing.
// Requires a positive quantity and a non-negative price so a listing is
// never born without sellable capacity.
func NewAddStockCommand(
	stockID, farmerID kernel.UUID,
	crop string,
	variety *string,
	qtyKg int,
	location *string,
	harvestDate *time.Time,
	pricePerKg decimal.Decimal,
) (AddStockCommand, error) {
	cmd := AddStockCommand{
		variety:     variety,
		location:    location,
		harvestDate: harvestDate,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setStockID(stockID),
		cmd.setFarmerID(farmerID),
		cmd.setCrop(crop),
		cmd.setQtyKg(qtyKg),
		cmd.setPricePerKg(pricePerKg),
	); err != nil {
		return AddStockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddStockCommandIsNotConstructed if validation fails.
func (c AddStockCommand) Validate() error {
	return c.guard.Validate(ErrAddStockCommandIsNotConstructed)
}

// StockID returns the identifier assigned to the new listing.
func (c AddStockCommand) StockID() kernel.UUID {
	return c.stockID
}

// FarmerID returns the owning farmer's identifier.
func (c AddStockCommand) FarmerID() kernel.UUID {
	return c.farmerID
}

// Crop returns the crop name.
func (c AddStockCommand) Crop() string {
	return c.crop
}

// Variety returns the optional crop variety.
func (c AddStockCommand) Variety() *string {
	return c.variety
}

// QtyKg returns the listed quantity in kilograms.
func (c AddStockCommand) QtyKg() int {
	return c.qtyKg
}

// Location returns the optional listing location.
func (c AddStockCommand) Location() *string {
	return c.location
}

// HarvestDate returns the optional harvest date.
func (c AddStockCommand) HarvestDate() *time.Time {
	return c.harvestDate
}

// PricePerKg returns the listed unit price.
func (c AddStockCommand) PricePerKg() decimal.Decimal {
	return c.pricePerKg
}

func (c *AddStockCommand) setStockID(stockID kernel.UUID) error {
	if err := stockID.Validate(); err != nil {
		return err
	}
	c.stockID = stockID
	return nil
}

func (c *AddStockCommand) setFarmerID(farmerID kernel.UUID) error {
	if err := farmerID.Validate(); err != nil {
		return err
	}
	c.farmerID = farmerID
	return nil
}

func (c *AddStockCommand) setCrop(crop string) error {
	if crop == "" {
		return errs.NewValueIsRequiredError("crop")
	}
	c.crop = crop
	return nil
}

func (c *AddStockCommand) setQtyKg(qtyKg int) error {
	if qtyKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("qty kg", fmt.Errorf("%d is not positive", qtyKg))
	}
	c.qtyKg = qtyKg
	return nil
}

func (c *AddStockCommand) setPricePerKg(pricePerKg decimal.Decimal) error {
	if pricePerKg.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"price per kg",
			fmt.Errorf("%s is negative", pricePerKg.String()),
		)
	}
	c.pricePerKg = pricePerKg
	return nil
}
