package queries_test

import (
	"context"
	"testing"
	"time"

	"agromarket/internal/adapters/out/postgres/listingrepo"
	"agromarket/internal/adapters/out/postgres/userrepo"
	"agromarket/internal/core/application/usecases/queries"
	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/listing"
	"agromarket/internal/core/domain/model/user"
	"agromarket/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetListingsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetListingsQueryHandler
}

func (suite *GetListingsQueryHandlerTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&userrepo.UserDTO{}, &listingrepo.ListingDTO{}))

	suite.handler = queries.NewGetListingsQueryHandler(db)
}

func (suite *GetListingsQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE listings, users").Error)
}

func (suite *GetListingsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetListingsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptyPage() {
	query := queries.NewGetListingsQuery("", "", "", nil, nil, 1, 20)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result.Listings)
	suite.Zero(result.Total)
}

func (suite *GetListingsQueryHandlerTestSuite) TestHandle_OnlyActiveListingsAppear() {
	farmerID := suite.createTestFarmer("Musa Ibrahim")
	active := suite.createTestListing(farmerID, "Fresh Tomatoes", "tomatoes", "Kano", 500)
	hidden := suite.createTestListing(farmerID, "Old Yams", "yams", "Kano", 500)
	suite.Require().NoError(hidden.SetActive(false, time.Now().UTC()))
	suite.Require().NoError(listingrepo.NewGormListingRepository(suite.db).Update(context.Background(), hidden))

	query := queries.NewGetListingsQuery("", "", "", nil, nil, 1, 20)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(int64(1), result.Total)
	suite.Require().Len(result.Listings, 1)
	suite.Equal(active.ID(), result.Listings[0].ID)
	suite.Equal("Musa Ibrahim", result.Listings[0].FarmerName)
	suite.Equal(listing.Active, result.Listings[0].Status)
}

func (suite *GetListingsQueryHandlerTestSuite) TestHandle_FiltersByProduceTypeAndState() {
	farmerID := suite.createTestFarmer("Musa Ibrahim")
	suite.createTestListing(farmerID, "Fresh Tomatoes", "tomatoes", "Kano", 500)
	suite.createTestListing(farmerID, "Sweet Maize", "maize", "Kano", 500)
	suite.createTestListing(farmerID, "Oyo Tomatoes", "tomatoes", "Oyo", 500)

	query := queries.NewGetListingsQuery("tomatoes", "Kano", "", nil, nil, 1, 20)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(int64(1), result.Total)
	suite.Require().Len(result.Listings, 1)
	suite.Equal("Fresh Tomatoes", result.Listings[0].Title)
}

func (suite *GetListingsQueryHandlerTestSuite) TestHandle_FiltersByPriceRange() {
	farmerID := suite.createTestFarmer("Musa Ibrahim")
	suite.createTestListing(farmerID, "Cheap Peppers", "peppers", "Kano", 300)
	suite.createTestListing(farmerID, "Fresh Tomatoes", "tomatoes", "Kano", 500)
	suite.createTestListing(farmerID, "Premium Yams", "yams", "Kano", 900)

	minPrice := 400.0
	maxPrice := 600.0
	query := queries.NewGetListingsQuery("", "", "", &minPrice, &maxPrice, 1, 20)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(int64(1), result.Total)
	suite.Require().Len(result.Listings, 1)
	suite.Equal("Fresh Tomatoes", result.Listings[0].Title)
	suite.Equal(500.0, result.Listings[0].Price)
}

func (suite *GetListingsQueryHandlerTestSuite) TestHandle_PriceBoundsAreInclusive() {
	farmerID := suite.createTestFarmer("Musa Ibrahim")
	suite.createTestListing(farmerID, "Fresh Tomatoes", "tomatoes", "Kano", 500)

	minPrice := 500.0
	maxPrice := 500.0
	query := queries.NewGetListingsQuery("", "", "", &minPrice, &maxPrice, 1, 20)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(int64(1), result.Total)
}

func (suite *GetListingsQueryHandlerTestSuite) TestHandle_SearchMatchesTitleAndDescriptionCaseInsensitively() {
	farmerID := suite.createTestFarmer("Musa Ibrahim")
	suite.createTestListing(farmerID, "Fresh Tomatoes", "tomatoes", "Kano", 500)
	suite.createTestListing(farmerID, "Sweet Maize", "maize", "Kano", 500)

	byTitle, err := suite.handler.Handle(context.Background(),
		queries.NewGetListingsQuery("", "", "MAIZE", nil, nil, 1, 20))
	suite.Require().NoError(err)
	suite.Equal(int64(1), byTitle.Total)
	suite.Require().Len(byTitle.Listings, 1)
	suite.Equal("Sweet Maize", byTitle.Listings[0].Title)

	byDescription, err := suite.handler.Handle(context.Background(),
		queries.NewGetListingsQuery("", "", "vine ripened", nil, nil, 1, 20))
	suite.Require().NoError(err)
	suite.Equal(int64(2), byDescription.Total)

	noMatch, err := suite.handler.Handle(context.Background(),
		queries.NewGetListingsQuery("", "", "plantain", nil, nil, 1, 20))
	suite.Require().NoError(err)
	suite.Zero(noMatch.Total)
	suite.Empty(noMatch.Listings)
}

func (suite *GetListingsQueryHandlerTestSuite) TestHandle_PaginatesNewestFirst() {
	farmerID := suite.createTestFarmer("Musa Ibrahim")
	for range 5 {
		suite.createTestListing(farmerID, "Fresh Tomatoes", "tomatoes", "Kano", 500)
	}

	firstPage, err := suite.handler.Handle(context.Background(),
		queries.NewGetListingsQuery("", "", "", nil, nil, 1, 2))
	suite.Require().NoError(err)
	suite.Equal(int64(5), firstPage.Total)
	suite.Len(firstPage.Listings, 2)

	lastPage, err := suite.handler.Handle(context.Background(),
		queries.NewGetListingsQuery("", "", "", nil, nil, 3, 2))
	suite.Require().NoError(err)
	suite.Len(lastPage.Listings, 1)
}

func (suite *GetListingsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetListingsQuery{})

	suite.Require().Error(err)
	suite.ErrorIs(err, queries.ErrGetListingsQueryIsNotConstructed)
}

func (suite *GetListingsQueryHandlerTestSuite) TestDetailHandler_ReturnsSingleListing() {
	farmerID := suite.createTestFarmer("Musa Ibrahim")
	created := suite.createTestListing(farmerID, "Fresh Tomatoes", "tomatoes", "Kano", 500)

	query, err := queries.NewGetListingQuery(created.ID())
	suite.Require().NoError(err)

	detailHandler := queries.NewGetListingQueryHandler(suite.db)
	result, err := detailHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(created.ID(), result.ID)
	suite.Equal("Fresh Tomatoes", result.Title)
	suite.Equal([]string{"https://img.example/1.jpg"}, result.ImageURLs)
}

func (suite *GetListingsQueryHandlerTestSuite) TestDetailHandler_MissingListing_ReturnsNotFoundError() {
	query, err := queries.NewGetListingQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	detailHandler := queries.NewGetListingQueryHandler(suite.db)
	_, err = detailHandler.Handle(context.Background(), query)

	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *GetListingsQueryHandlerTestSuite) createTestFarmer(name string) kernel.UUID {
	aggregate, err := user.NewUser(
		kernel.NewUUID(),
		name+"@example.ng", name, "+2348000000000", "hash",
		user.RoleFarmer,
		kernel.Location{State: "Kano", LGA: "Tarauni", Address: "5 Market Rd"},
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(userrepo.NewGormUserRepository(suite.db).Add(context.Background(), aggregate))
	return aggregate.ID()
}

func (suite *GetListingsQueryHandlerTestSuite) createTestListing(
	farmerID kernel.UUID,
	title, produceType, state string,
	priceAmount float64,
) *listing.Listing {
	price, err := kernel.NewMoney(priceAmount)
	suite.Require().NoError(err)
	quantity, err := kernel.NewQuantity(40)
	suite.Require().NoError(err)

	aggregate, err := listing.NewListing(
		kernel.NewUUID(), farmerID,
		title, "Vine ripened", produceType,
		price, quantity, "kg",
		kernel.Location{State: state, LGA: "Tarauni", Address: "5 Market Rd"},
		[]string{"https://img.example/1.jpg"},
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(listingrepo.NewGormListingRepository(suite.db).Add(context.Background(), aggregate))
	return aggregate
}

func TestGetListingsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetListingsQueryHandlerTestSuite))
}
