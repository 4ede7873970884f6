package commands

import (
	"context"

	"agrimarket/internal/core/domain/model/order"
	"agrimarket/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves the referenced stock listing and buyer, creates the order in
// PendingCapacity status with its total frozen, and persists it.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(orderID, stockID, buyerID, 100, price)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// created is now awaiting capacity confirmation
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Fails with an object-not-found error when the referenced stock listing or
// buyer does not resolve. Uses a transaction so the order is either fully
// persisted or rolled back on error.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	if _, err := uow.StockRepository().Get(ctx, cmd.StockID()); err != nil {
		return nil, err
	}

	buyerExists, err := uow.UserRepository().Exists(ctx, cmd.BuyerID())
	if err != nil {
		return nil, err
	}
	if !buyerExists {
		return nil, errs.NewObjectNotFoundError("buyer", cmd.BuyerID().String())
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.StockID(), cmd.BuyerID(), cmd.QtyKg(), cmd.PricePerKg())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
