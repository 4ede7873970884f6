package commands

import (
	"errors"

	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/logistics"
	"agrimarket/internal/pkg/guard"
)

var (
	ErrUpdateLogisticsStatusCommandIsNotConstructed = errors.New(
		"UpdateLogisticsStatusCommand must be created via NewUpdateLogisticsStatusCommand constructor",
	)
)

// UpdateLogisticsStatusCommand requests a status advance on a logistics record.
// A completion status also confirms delivery on the linked order.
type UpdateLogisticsStatusCommand struct { //nolint:recvcheck //using for validation
	logisticsID kernel.UUID
	newStatus   logistics.Status

	guard guard.ConstructorGuard
}

// NewUpdateLogisticsStatusCommand creates a command to advance a logistics status.
// Validates the record identifier and that the new status is in the closed vocabulary.
func NewUpdateLogisticsStatusCommand(
	logisticsID kernel.UUID,
	newStatus logistics.Status,
) (UpdateLogisticsStatusCommand, error) {
	if err := errors.Join(
		logisticsID.Validate(),
		newStatus.Validate(),
	); err != nil {
		return UpdateLogisticsStatusCommand{}, err
	}

	return UpdateLogisticsStatusCommand{
		logisticsID: logisticsID,
		newStatus:   newStatus,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateLogisticsStatusCommandIsNotConstructed if validation fails.
func (c UpdateLogisticsStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLogisticsStatusCommandIsNotConstructed)
}

// LogisticsID returns the identifier of the logistics record to update.
func (c UpdateLogisticsStatusCommand) LogisticsID() kernel.UUID {
	return c.logisticsID
}

// NewStatus returns the requested status.
func (c UpdateLogisticsStatusCommand) NewStatus() logistics.Status {
	return c.newStatus
}
