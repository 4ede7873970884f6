package commands

import (
	"context"

	"agrimarket/internal/core/domain/model/logistics"
	"agrimarket/internal/core/domain/model/order"
)

// AssignLogisticsResult carries the two aggregates touched by a successful
// logistics assignment: the new Scheduled logistics record and the order it
// moved to InTransit.
type AssignLogisticsResult struct {
	Order     *order.Order
	Logistics *logistics.Logistics
}

// AssignLogisticsCommandHandler coordinates transport arrangement for an order.
// Creates the logistics record in Scheduled status, links it back to the
// order, and advances the order to InTransit, all inside one transaction, so
// either both records are persisted or neither is.
//
// The order must be in ReadyForLogistics; requesting transport from any other
// state fails with an invalid-state error, which in particular forbids
// bypassing capacity confirmation. A concurrent assignment on the same order
// loses the optimistic version check and fails with a conflict error, so at
// most one logistics record ever exists per order.
//
// Example:
//
//	handler := NewAssignLogisticsCommandHandler(uowFactory)
//	res, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrInvalidState):
//	    // capacity not confirmed yet, or transport already arranged
//	case errors.Is(err, errs.ErrConflict):
//	    // another assignment won the race
//	case err != nil:
//	    // infrastructure failure
//	default:
//	    log.Printf("order %s in transit via %s", res.Order.ID(), res.Logistics.Carrier())
//	}
type AssignLogisticsCommandHandler struct {
	uowFactory LogisticsUoWFactory
}

// NewAssignLogisticsCommandHandler creates a handler for logistics assignment.
// Requires a LogisticsUoWFactory for coordinating the two-record write.
func NewAssignLogisticsCommandHandler(uowFactory LogisticsUoWFactory) AssignLogisticsCommandHandler {
	return AssignLogisticsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the logistics assignment command.
// Fails with an object-not-found error when the order does not exist, an
// invalid-state error when the order is not ReadyForLogistics, and a conflict
// error when a concurrent operation already advanced the order.
func (h AssignLogisticsCommandHandler) Handle(
	ctx context.Context,
	cmd AssignLogisticsCommand,
) (*AssignLogisticsResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	readyOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	arrangement, err := logistics.NewLogistics(
		cmd.LogisticsID(),
		cmd.OrderID(),
		cmd.Mode(),
		cmd.Carrier(),
		cmd.Cost(),
		cmd.Discount(),
	)
	if err != nil {
		return nil, err
	}

	if err = readyOrder.AttachLogistics(arrangement.ID()); err != nil {
		return nil, err
	}

	if err = uow.LogisticsRepository().Add(ctx, arrangement); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, readyOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return &AssignLogisticsResult{
		Order:     readyOrder,
		Logistics: arrangement,
	}, nil
}
