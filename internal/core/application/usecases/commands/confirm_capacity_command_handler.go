package commands

import (
	"context"

	"agrimarket/internal/core/domain/model/order"
	"agrimarket/internal/core/domain/services"
)

// ConfirmCapacityCommandHandler runs the capacity evaluation workflow for a
// pending order: it reads the stock snapshot and the quantity already
// committed to other confirmed orders, obtains the verdict from the
// CapacityEvaluator domain service, and records it on the order.
//
// A positive verdict moves the order to ReadyForLogistics; a negative verdict
// leaves it parked in PendingCapacity with the verdict recorded, so it can be
// re-evaluated later. Re-running against an already confirmed order is a
// no-op returning the current state.
type ConfirmCapacityCommandHandler struct {
	uowFactory CapacityUoWFactory
	evaluator  services.CapacityEvaluator
}

// NewConfirmCapacityCommandHandler creates a handler for capacity confirmation.
// Requires a CapacityUoWFactory for transactional reads and the order update.
func NewConfirmCapacityCommandHandler(uowFactory CapacityUoWFactory) ConfirmCapacityCommandHandler {
	return ConfirmCapacityCommandHandler{
		uowFactory: uowFactory,
		evaluator:  services.NewCapacityEvaluator(),
	}
}

// Handle processes the capacity confirmation command.
// Fails with an object-not-found error when the order does not exist.
// The read of committed quantities and the order update share one
// transaction, so a concurrent confirmation cannot double-commit capacity.
func (h ConfirmCapacityCommandHandler) Handle(
	ctx context.Context,
	cmd ConfirmCapacityCommand,
) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()

	pendingOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	// Idempotency: a second confirmation call is a read, not a transition.
	if pendingOrder.Status() == order.ReadyForLogistics {
		return pendingOrder, nil
	}

	listing, err := uow.StockRepository().Get(ctx, pendingOrder.StockID())
	if err != nil {
		return nil, err
	}

	committedKg, err := orderRepo.GetCommittedKgForStock(ctx, pendingOrder.StockID())
	if err != nil {
		return nil, err
	}

	verdict, err := h.evaluator.Evaluate(listing, committedKg, pendingOrder.QtyKg())
	if err != nil {
		return nil, err
	}

	if verdict {
		err = pendingOrder.ConfirmCapacity()
	} else {
		err = pendingOrder.DenyCapacity()
	}
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, pendingOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return pendingOrder, nil
}
