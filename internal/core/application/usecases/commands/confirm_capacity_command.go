package commands

import (
	"errors"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/pkg/guard"
)

var (
	ErrConfirmCapacityCommandIsNotConstructed = errors.New(
		"ConfirmCapacityCommand must be created via NewConfirmCapacityCommand constructor",
	)
)

// ConfirmCapacityCommand requests a capacity verdict for a pending order.
// The verdict compares the ordered quantity against the stock listing's
// remaining (uncommitted) quantity.
type ConfirmCapacityCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmCapacityCommand creates a command to evaluate an order's capacity.
// Validates that the order ID is valid.
func NewConfirmCapacityCommand(orderID kernel.UUID) (ConfirmCapacityCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ConfirmCapacityCommand{}, err
	}

	return ConfirmCapacityCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrConfirmCapacityCommandIsNotConstructed if validation fails.
func (c ConfirmCapacityCommand) Validate() error {
	return c.guard.Validate(ErrConfirmCapacityCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to evaluate.
func (c ConfirmCapacityCommand) OrderID() kernel.UUID {
	return c.orderID
}
