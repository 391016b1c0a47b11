package queries_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/adapters/out/postgres/productrepo"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/product"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetLowStockProductsQueryHandlerTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	handler     queries.GetLowStockProductsQueryHandler
	productRepo *productrepo.GormProductRepository
}

func (suite *GetLowStockProductsQueryHandlerTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&productrepo.ProductDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetLowStockProductsQueryHandler(db)
	suite.productRepo = productrepo.NewGormProductRepository(db, &mockAggregateTracker{})
}

func (suite *GetLowStockProductsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetLowStockProductsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE products").Error
	suite.Require().NoError(err)
}

func (suite *GetLowStockProductsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetLowStockProductsQuery(5)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetLowStockProductsQueryHandlerTestSuite) TestHandle_AllProductsAboveThreshold_ReturnsEmptySlice() {
	suite.createProduct("Keyboard", 10)
	suite.createProduct("Monitor", 25)

	query, err := queries.NewGetLowStockProductsQuery(5)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *GetLowStockProductsQueryHandlerTestSuite) TestHandle_MixedStock_ReturnsOnlyLowStockProducts() {
	depleted := suite.createProduct("Mouse", 0)
	low := suite.createProduct("Cable", 3)
	atThreshold := suite.createProduct("Adapter", 5)
	suite.createProduct("Keyboard", 10)

	query, err := queries.NewGetLowStockProductsQuery(5)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	resultIDs := make(map[kernel.UUID]bool)
	for _, r := range result {
		resultIDs[r.ID] = true
	}

	suite.True(resultIDs[depleted.ID()])
	suite.True(resultIDs[low.ID()])
	suite.True(resultIDs[atThreshold.ID()])
}

func (suite *GetLowStockProductsQueryHandlerTestSuite) TestHandle_ResultsSortedByQuantity() {
	suite.createProduct("Adapter", 5)
	suite.createProduct("Mouse", 0)
	suite.createProduct("Cable", 3)

	query, err := queries.NewGetLowStockProductsQuery(5)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	suite.Equal("Mouse", result[0].Name)
	suite.Equal(0, result[0].Quantity)
	suite.Equal("Cable", result[1].Name)
	suite.Equal(3, result[1].Quantity)
	suite.Equal("Adapter", result[2].Name)
	suite.Equal(5, result[2].Quantity)
}

func (suite *GetLowStockProductsQueryHandlerTestSuite) TestHandle_ZeroThreshold_ReturnsOnlyDepletedProducts() {
	depleted := suite.createProduct("Mouse", 0)
	suite.createProduct("Cable", 1)

	query, err := queries.NewGetLowStockProductsQuery(0)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(depleted.ID(), result[0].ID)
}

func (suite *GetLowStockProductsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetLowStockProductsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetLowStockProductsQuery constructor")
}

// createProduct persists a product with the given name and stock quantity.
func (suite *GetLowStockProductsQueryHandlerTestSuite) createProduct(
	name string, quantity int,
) *product.Product {
	price, err := kernel.NewMoney(999)
	suite.Require().NoError(err)

	p, err := product.NewProduct(kernel.NewUUID(), name, price, quantity)
	suite.Require().NoError(err)

	err = suite.productRepo.Add(context.Background(), p)
	suite.Require().NoError(err)
	return p
}

func TestGetLowStockProductsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetLowStockProductsQueryHandlerTestSuite))
}
