package postgres_test

import (
	"context"
	"testing"
	"time"

	"agrimarket/internal/adapters/out/postgres"
	"agrimarket/internal/adapters/out/postgres/logisticsrepo"
	"agrimarket/internal/adapters/out/postgres/orderrepo"
	"agrimarket/internal/adapters/out/postgres/stockrepo"
	"agrimarket/internal/adapters/out/postgres/userrepo"
	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/logistics"
	"agrimarket/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction semantics across the
// order and logistics repositories, which must commit or roll back together.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&stockrepo.StockDTO{},
		&orderrepo.OrderDTO{},
		&logisticsrepo.LogisticsDTO{},
		&userrepo.UserDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, logistics, stocks, users").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsOrderAndLogisticsTogether() {
	ctx := context.Background()
	readyOrder, arrangement := suite.createAssignmentFixture()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.OrderRepository().Add(ctx, readyOrder))
	suite.Require().NoError(uow.LogisticsRepository().Add(ctx, arrangement))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), suite.countRows(&orderrepo.OrderDTO{}))
	suite.Equal(int64(1), suite.countRows(&logisticsrepo.LogisticsDTO{}))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllWrites() {
	ctx := context.Background()
	readyOrder, arrangement := suite.createAssignmentFixture()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.OrderRepository().Add(ctx, readyOrder))
	suite.Require().NoError(uow.LogisticsRepository().Add(ctx, arrangement))
	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(0), suite.countRows(&orderrepo.OrderDTO{}))
	suite.Equal(int64(0), suite.countRows(&logisticsrepo.LogisticsDTO{}))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	suite.Require().Error(uow.Commit(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()
	suite.Require().Error(uow.Rollback(context.Background()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_CalledTwice_DoesNotNest() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUserRepository_Exists() {
	ctx := context.Background()
	buyerID := kernel.NewUUID()
	suite.Require().NoError(suite.db.Create(&userrepo.UserDTO{
		ID:   buyerID.Bytes(),
		Name: "Test Buyer",
		Role: "buyer",
	}).Error)

	uow := suite.factory.Create()

	exists, err := uow.UserRepository().Exists(ctx, buyerID)
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = uow.UserRepository().Exists(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositories_OutsideTransaction_WriteImmediately() {
	ctx := context.Background()
	readyOrder, _ := suite.createAssignmentFixture()

	// No Begin: the repository uses the main connection.
	uow := suite.factory.Create()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, readyOrder))

	suite.Equal(int64(1), suite.countRows(&orderrepo.OrderDTO{}))
}

// createAssignmentFixture builds an order ready for logistics and a matching
// scheduled logistics record, mirroring the assignment use case.
func (suite *UnitOfWorkIntegrationTestSuite) createAssignmentFixture() (*order.Order, *logistics.Logistics) {
	readyOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 100, decimal.NewFromInt(12))
	suite.Require().NoError(err)
	suite.Require().NoError(readyOrder.ConfirmCapacity())

	arrangement, err := logistics.NewLogistics(
		kernel.NewUUID(), readyOrder.ID(), logistics.ExternalCourier,
		"AgroTrans", decimal.NewFromInt(200), decimal.Zero)
	suite.Require().NoError(err)
	suite.Require().NoError(readyOrder.AttachLogistics(arrangement.ID()))

	return readyOrder, arrangement
}

func (suite *UnitOfWorkIntegrationTestSuite) countRows(model any) int64 {
	var count int64
	suite.Require().NoError(suite.db.Model(model).Count(&count).Error)
	return count
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
