package commands

import (
	"context"

	"agrimarket/internal/core/domain/model/logistics"
	"agrimarket/internal/core/domain/model/order"
)

// UpdateLogisticsStatusResult carries the aggregates touched by a status update.
// Order is nil when the update did not complete the shipment, or when the
// linked order had already been confirmed as delivered.
type UpdateLogisticsStatusResult struct {
	Logistics *logistics.Logistics
	Order     *order.Order
}

// UpdateLogisticsStatusCommandHandler processes logistics status updates.
// When the new status marks the shipment as completed, the linked order is
// confirmed as delivered inside the same transaction, so the two records
// never disagree about whether the goods arrived.
type UpdateLogisticsStatusCommandHandler struct {
	uowFactory LogisticsUoWFactory
}

// NewUpdateLogisticsStatusCommandHandler creates a handler for logistics status updates.
// Requires a LogisticsUoWFactory so the order and logistics writes share a transaction.
func NewUpdateLogisticsStatusCommandHandler(
	uowFactory LogisticsUoWFactory,
) UpdateLogisticsStatusCommandHandler {
	return UpdateLogisticsStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle advances a logistics record to the requested status.
//
// Statuses only move forward: SCHEDULED → IN_TRANSIT → DELIVERED. Repeating
// the current status is accepted and changes nothing, so retried requests
// stay safe. A DELIVERED update also confirms delivery on the linked order
// atomically; if the order is already delivered it is left untouched.
//
// Returns:
//   - *UpdateLogisticsStatusResult: The updated logistics record and, when
//     the order was confirmed in this call, the updated order.
//   - error: errs.ObjectNotFoundError if the logistics record does not exist,
//     errs.InvalidStateError if the transition would move backwards,
//     errs.ConflictError if the order changed concurrently.
func (h UpdateLogisticsStatusCommandHandler) Handle(
	ctx context.Context, cmd UpdateLogisticsStatusCommand,
) (*UpdateLogisticsStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	arrangement, err := uow.LogisticsRepository().Get(ctx, cmd.LogisticsID())
	if err != nil {
		return nil, err
	}

	if err := arrangement.ChangeStatus(cmd.NewStatus()); err != nil {
		return nil, err
	}

	if err := uow.LogisticsRepository().Update(ctx, arrangement); err != nil {
		return nil, err
	}

	result := &UpdateLogisticsStatusResult{Logistics: arrangement}

	if arrangement.Status().IsCompleted() {
		linkedOrder, err := uow.OrderRepository().Get(ctx, arrangement.OrderID())
		if err != nil {
			return nil, err
		}

		if linkedOrder.Status() != order.Delivered {
			if err := linkedOrder.ConfirmDelivery(); err != nil {
				return nil, err
			}

			if err := uow.OrderRepository().Update(ctx, linkedOrder); err != nil {
				return nil, err
			}

			result.Order = linkedOrder
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return result, nil
}
