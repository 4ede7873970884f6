package commands

import (
	"errors"
	"fmt"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/pkg/errs"
	"agrimarket/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a buyer's request to purchase a quantity from
// a stock listing. The unit price is a snapshot supplied at order time; the
// order total is derived from it once and frozen.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, stockID, buyerID, 100, decimal.NewFromFloat(25.50))
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s awaiting capacity confirmation", created.ID())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	stockID    kernel.UUID
	buyerID    kernel.UUID
	qtyKg      int
	pricePerKg decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new purchase order.
// Validates that all identifiers are valid, the quantity is positive, and the
// unit price is non-negative. Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID, stockID, buyerID kernel.UUID,
	qtyKg int,
	pricePerKg decimal.Decimal,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setStockID(stockID),
		orderCommand.setBuyerID(buyerID),
		orderCommand.setQtyKg(qtyKg),
		orderCommand.setPricePerKg(pricePerKg),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// StockID returns the referenced stock listing identifier.
func (c CreateOrderCommand) StockID() kernel.UUID {
	return c.stockID
}

// BuyerID returns the purchasing buyer's identifier.
func (c CreateOrderCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// QtyKg returns the ordered quantity in kilograms.
func (c CreateOrderCommand) QtyKg() int {
	return c.qtyKg
}

// PricePerKg returns the unit price snapshot.
func (c CreateOrderCommand) PricePerKg() decimal.Decimal {
	return c.pricePerKg
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setStockID(stockID kernel.UUID) error {
	if err := stockID.Validate(); err != nil {
		return err
	}

	c.stockID = stockID
	return nil
}

func (c *CreateOrderCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	c.buyerID = buyerID
	return nil
}

func (c *CreateOrderCommand) setQtyKg(qtyKg int) error {
	if qtyKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("qty kg", fmt.Errorf("%d is not greater than 0", qtyKg))
	}

	c.qtyKg = qtyKg
	return nil
}

func (c *CreateOrderCommand) setPricePerKg(pricePerKg decimal.Decimal) error {
	if pricePerKg.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"price per kg",
			fmt.Errorf("%s is negative", pricePerKg.String()),
		)
	}

	c.pricePerKg = pricePerKg
	return nil
}
