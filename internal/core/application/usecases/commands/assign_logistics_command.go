package commands

import (
	"errors"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/logistics"
	"agrimarket/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrAssignLogisticsCommandIsNotConstructed = errors.New(
		"AssignLogisticsCommand must be created via NewAssignLogisticsCommand constructor",
	)
)

// AssignLogisticsCommand requests a transport arrangement for an order that
// has passed capacity confirmation.
//
// Example:
//
//	cmd, err := NewAssignLogisticsCommand(
//	    kernel.NewUUID(), orderID,
//	    logistics.ExternalCourier, "FastFreight",
//	    decimal.NewFromInt(250), decimal.Zero,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid logistics data: %w", err)
//	}
type AssignLogisticsCommand struct { //nolint:recvcheck //using for validation
	logisticsID kernel.UUID
	orderID     kernel.UUID
	mode        logistics.Mode
	carrier     string
	cost        decimal.Decimal
	discount    decimal.Decimal

	guard guard.ConstructorGuard
}

// NewAssignLogisticsCommand creates a command to arrange transport for an order.
// Validates both identifiers and the transport mode; cost and discount bounds
// are enforced by the Logistics aggregate on creation.
func NewAssignLogisticsCommand(
	logisticsID, orderID kernel.UUID,
	mode logistics.Mode,
	carrier string,
	cost, discount decimal.Decimal,
) (AssignLogisticsCommand, error) {
	if err := errors.Join(
		logisticsID.Validate(),
		orderID.Validate(),
		mode.Validate(),
	); err != nil {
		return AssignLogisticsCommand{}, err
	}

	return AssignLogisticsCommand{
		logisticsID: logisticsID,
		orderID:     orderID,
		mode:        mode,
		carrier:     carrier,
		cost:        cost,
		discount:    discount,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignLogisticsCommandIsNotConstructed if validation fails.
func (c AssignLogisticsCommand) Validate() error {
	return c.guard.Validate(ErrAssignLogisticsCommandIsNotConstructed)
}

// LogisticsID returns the identifier for the new logistics record.
func (c AssignLogisticsCommand) LogisticsID() kernel.UUID {
	return c.logisticsID
}

// OrderID returns the identifier of the order to arrange transport for.
func (c AssignLogisticsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Mode returns the requested transport mode.
func (c AssignLogisticsCommand) Mode() logistics.Mode {
	return c.mode
}

// Carrier returns the carrier name.
func (c AssignLogisticsCommand) Carrier() string {
	return c.carrier
}

// Cost returns the transport cost.
func (c AssignLogisticsCommand) Cost() decimal.Decimal {
	return c.cost
}

// Discount returns the discount rate.
func (c AssignLogisticsCommand) Discount() decimal.Decimal {
	return c.discount
}
