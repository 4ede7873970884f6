package commands_test

import (
	"context"
	"errors"
	"testing"

	"agrimarket/internal/core/application/usecases/commands"
	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/stock"
	"agrimarket/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStockRepository struct{ mock.Mock }

func (m *MockStockRepository) Add(ctx context.Context, s *stock.Stock) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockStockRepository) Get(_ context.Context, _ kernel.UUID) (*stock.Stock, error) {
	return nil, errors.New("not implemented in mock")
}

type MockStockUoW struct{ mock.Mock }

func (m *MockStockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockStockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockStockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStockUoW) StockRepository() ports.StockRepository {
	args := m.Called()
	return args.Get(0).(ports.StockRepository)
}

type MockStockUoWFactory struct{ mock.Mock }

func (m *MockStockUoWFactory) Create() commands.StockUoW {
	args := m.Called()
	return args.Get(0).(commands.StockUoW)
}

func TestAddStockCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	variety := "durum"
	location := "Novi Sad"
	cmd, err := commands.NewAddStockCommand(
		kernel.NewUUID(), kernel.NewUUID(), "wheat", &variety, 500, &location, nil,
		decimal.NewFromFloat(11.5))
	require.NoError(t, err)

	repo := new(MockStockRepository)
	uow := new(MockStockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StockRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*stock.Stock")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddStockCommandHandler(factory)
	listing, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, stock.Available, listing.Status())
	require.Equal(t, "wheat", listing.Crop())
	require.Equal(t, 500, listing.QtyKg())
	require.NotNil(t, listing.Variety())
	require.Equal(t, "durum", *listing.Variety())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddStockCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AddStockCommand{} // not constructed properly
	factory := new(MockStockUoWFactory)
	h := commands.NewAddStockCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestAddStockCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddStockCommand(
		kernel.NewUUID(), kernel.NewUUID(), "barley", nil, 200, nil, nil,
		decimal.NewFromInt(8))
	require.NoError(t, err)

	repo := new(MockStockRepository)
	uow := new(MockStockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StockRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*stock.Stock")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddStockCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
