package commands

import (
	"context"

	"agrimarket/internal/core/domain/model/stock"
)

// AddStockCommandHandler handles publication of new stock listings.
// New listings always start in the available state.
type AddStockCommandHandler struct {
	uowFactory StockUoWFactory
}

// NewAddStockCommandHandler creates a handler for stock publication operations.
func NewAddStockCommandHandler(uowFactory StockUoWFactory) AddStockCommandHandler {
	return AddStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stock publication command.
// Creates the listing in the available state and persists it transactionally.
func (h AddStockCommandHandler) Handle(ctx context.Context, cmd AddStockCommand) (*stock.Stock, error) {
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

	listing, err := stock.NewStock(
		cmd.StockID(),
		cmd.FarmerID(),
		cmd.Crop(),
		cmd.Variety(),
		cmd.QtyKg(),
		cmd.Location(),
		cmd.HarvestDate(),
		cmd.PricePerKg(),
		stock.Available,
	)
	if err != nil {
		return nil, err
	}

	if err = uow.StockRepository().Add(ctx, listing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return listing, nil
}
