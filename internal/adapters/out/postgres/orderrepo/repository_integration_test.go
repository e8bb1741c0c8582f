package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"agromarket/internal/adapters/out/postgres/orderrepo"
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

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()

	original := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.ListingID(), retrieved.ListingID())
	suite.Equal(original.BuyerID(), retrieved.BuyerID())
	suite.Equal(original.FarmerID(), retrieved.FarmerID())
	suite.Equal("Fresh Tomatoes", retrieved.ListingTitle())
	suite.Equal(5.0, retrieved.Quantity().Value())
	suite.Equal(500.0, retrieved.UnitPrice().Amount())
	suite.Equal(2500.0, retrieved.TotalPrice().Amount())
	suite.Equal(order.Pending, retrieved.Status())
	suite.Equal("Amina Bello", retrieved.BuyerName())
	suite.Equal("Musa Ibrahim", retrieved.FarmerName())
	suite.Equal("12 Airport Rd", retrieved.DeliveryAddress())
	suite.Nil(retrieved.AcceptedAt())
	suite.Nil(retrieved.CompletedAt())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusTransitionAndStamp() {
	ctx := context.Background()

	aggregate := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	acceptedAt := time.Now().UTC().Truncate(time.Microsecond)
	effect, err := aggregate.ChangeStatus(order.Accepted, aggregate.FarmerID(), acceptedAt)
	suite.Require().NoError(err)
	suite.Equal(order.StockReserve, effect)
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	retrieved, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Accepted, retrieved.Status())
	suite.Require().NotNil(retrieved.AcceptedAt())
	suite.Equal(acceptedAt, retrieved.AcceptedAt().UTC())
	suite.Nil(retrieved.DeclinedAt())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_KeepsEarlierStatusStamps() {
	ctx := context.Background()

	aggregate := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	acceptedAt := time.Now().UTC().Truncate(time.Microsecond)
	_, err := aggregate.ChangeStatus(order.Accepted, aggregate.FarmerID(), acceptedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	completedAt := acceptedAt.Add(48 * time.Hour)
	_, err = aggregate.ChangeStatus(order.Completed, aggregate.BuyerID(), completedAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	retrieved, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Completed, retrieved.Status())
	suite.Require().NotNil(retrieved.AcceptedAt())
	suite.Equal(acceptedAt, retrieved.AcceptedAt().UTC())
	suite.Require().NotNil(retrieved.CompletedAt())
	suite.Equal(completedAt, retrieved.CompletedAt().UTC())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	aggregate := suite.createTestOrder()

	err := suite.repository.Update(ctx, aggregate)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_MultipleOrders_AllRetrievable() {
	ctx := context.Background()

	first := suite.createTestOrder()
	second := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(2), count)

	retrieved, err := suite.repository.Get(ctx, second.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.IsEqual(second))
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
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
	return aggregate
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
