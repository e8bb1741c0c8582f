package queries_test

import (
	"context"
	"testing"
	"time"

	"agromarket/internal/adapters/out/postgres/orderrepo"
	"agromarket/internal/core/application/usecases/queries"
	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/order"
	"agromarket/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderQueryHandler
}

func (suite *GetOrderQueryHandlerTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.handler = queries.NewGetOrderQueryHandler(db)
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_BuyerReadsOwnOrder() {
	created := suite.createTestOrder()

	query, err := queries.NewGetOrderQuery(created.ID(), created.BuyerID(), false)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(created.ID(), result.ID)
	suite.Equal("Fresh Tomatoes", result.ListingTitle)
	suite.Equal(order.Pending, result.Status)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_FarmerReadsOwnOrder() {
	created := suite.createTestOrder()

	query, err := queries.NewGetOrderQuery(created.ID(), created.FarmerID(), false)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(created.ID(), result.ID)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_OutsiderGetsNotFound() {
	created := suite.createTestOrder()

	query, err := queries.NewGetOrderQuery(created.ID(), kernel.NewUUID(), false)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_AdminReadsAnyOrder() {
	created := suite.createTestOrder()

	query, err := queries.NewGetOrderQuery(created.ID(), kernel.NewUUID(), true)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(created.ID(), result.ID)
	suite.Equal(created.BuyerID(), result.BuyerID)
	suite.Equal(created.FarmerID(), result.FarmerID)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_MissingOrder_NotFoundEvenForAdmin() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID(), kernel.NewUUID(), true)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetOrderQuery{})

	suite.Require().Error(err)
	suite.ErrorIs(err, queries.ErrGetOrderQueryIsNotConstructed)
}

func (suite *GetOrderQueryHandlerTestSuite) createTestOrder() *order.Order {
	quantity, err := kernel.NewQuantity(5)
	suite.Require().NoError(err)
	unitPrice, err := kernel.NewMoney(500)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"Fresh Tomatoes",
		quantity, unitPrice,
		"Amina Bello", "+2348011111111",
		"Musa Ibrahim", "+2348022222222",
		"12 Airport Rd",
		time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(orderrepo.NewGormOrderRepository(suite.db).Add(context.Background(), aggregate))
	return aggregate
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}
