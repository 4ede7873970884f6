package queries_test

import (
	"context"
	"testing"
	"time"

	"agrimarket/internal/adapters/out/postgres/orderrepo"
	"agrimarket/internal/core/application/usecases/queries"
	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/order"
	"agrimarket/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	listHandler  queries.GetOrdersQueryHandler
	fetchHandler queries.GetOrderQueryHandler
	orderRepo    *orderrepo.GormOrderRepository
}

func (suite *GetOrdersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.listHandler = queries.NewGetOrdersQueryHandler(db)
	suite.fetchHandler = queries.NewGetOrderQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetOrdersQuery(nil)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_NoFilter_ReturnsAllOrders() {
	suite.seedOrder(kernel.NewUUID(), 100)
	suite.seedOrder(kernel.NewUUID(), 200)

	query, err := queries.NewGetOrdersQuery(nil)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 2)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_BuyerFilter_ReturnsOnlyThatBuyersOrders() {
	buyerID := kernel.NewUUID()
	suite.seedOrder(buyerID, 100)
	suite.seedOrder(buyerID, 150)
	suite.seedOrder(kernel.NewUUID(), 200)

	query, err := queries.NewGetOrdersQuery(&buyerID)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 2)
	for _, resp := range result {
		suite.True(resp.BuyerID.IsEqual(buyerID))
	}
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_MapsAllFields() {
	seeded := suite.seedOrder(kernel.NewUUID(), 100)

	query, err := queries.NewGetOrdersQuery(nil)
	suite.Require().NoError(err)

	result, err := suite.listHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	resp := result[0]
	suite.True(resp.ID.IsEqual(seeded.ID()))
	suite.True(resp.StockID.IsEqual(seeded.StockID()))
	suite.True(resp.BuyerID.IsEqual(seeded.BuyerID()))
	suite.Equal(100, resp.QtyKg)
	suite.True(seeded.PricePerKg().Equal(resp.PricePerKg))
	suite.True(seeded.Total().Equal(resp.Total))
	suite.Equal(order.PendingCapacity, resp.Status)
	suite.Nil(resp.CapacityOK)
	suite.Nil(resp.LogisticsID)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestFetchHandle_ExistingOrder_ReturnsIt() {
	seeded := suite.seedOrder(kernel.NewUUID(), 100)

	query, err := queries.NewGetOrderQuery(seeded.ID())
	suite.Require().NoError(err)

	resp, err := suite.fetchHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.True(resp.ID.IsEqual(seeded.ID()))
	suite.Equal(order.PendingCapacity, resp.Status)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestFetchHandle_NonExistentOrder_ReturnsNotFoundError() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.fetchHandler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrdersQuery{}

	result, err := suite.listHandler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetOrdersQuery constructor")
}

func (suite *GetOrdersQueryHandlerTestSuite) seedOrder(buyerID kernel.UUID, qtyKg int) *order.Order {
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), buyerID, qtyKg, decimal.NewFromInt(12))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func TestGetOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrdersQueryHandlerTestSuite))
}
