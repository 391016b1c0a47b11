package queries_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderQueryHandler
	orderRepo *orderrepo.GormOrderRepository
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetOrderQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (suite *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
	err = suite.db.Exec("TRUNCATE TABLE order_items").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ExistingOrder_ReturnsOrderWithItems() {
	customerID := kernel.NewUUID()
	testOrder := suite.createOrder(customerID, map[int64]int{1999: 2, 750: 1})

	err := suite.orderRepo.Add(context.Background(), testOrder)
	suite.Require().NoError(err)

	query, err := queries.NewGetOrderQuery(testOrder.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), result.ID)
	suite.Equal(customerID, result.CustomerID)
	suite.WithinDuration(testOrder.CreatedAt(), result.CreatedAt, time.Millisecond)
	suite.WithinDuration(testOrder.UpdatedAt(), result.UpdatedAt, time.Millisecond)
	suite.Require().Len(result.Items, 2)

	itemsByProduct := make(map[kernel.UUID]queries.GetOrderItemResponse)
	for _, item := range result.Items {
		itemsByProduct[item.ProductID] = item
	}

	for _, lineItem := range testOrder.LineItems() {
		resultItem, exists := itemsByProduct[lineItem.ProductID()]
		suite.Require().True(exists, "Line item for product %s not in results", lineItem.ProductID())
		suite.Equal(lineItem.Price().Cents(), resultItem.Price.Cents())
		suite.Equal(lineItem.Quantity(), resultItem.Quantity)
	}
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_NonExistentOrder_ReturnsNotFoundError() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Empty(result.Items)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrderQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrderQuery constructor")
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	testOrder := suite.createOrder(kernel.NewUUID(), map[int64]int{100: 1})
	err := suite.orderRepo.Add(context.Background(), testOrder)
	suite.Require().NoError(err)

	query, err := queries.NewGetOrderQuery(testOrder.ID())
	suite.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = suite.handler.Handle(ctx, query)
	suite.Require().Error(err)
}

// createOrder builds an order with one line item per priceCents->quantity entry.
func (suite *GetOrderQueryHandlerTestSuite) createOrder(
	customerID kernel.UUID, items map[int64]int,
) *order.Order {
	lineItems := make([]order.LineItem, 0, len(items))
	for priceCents, quantity := range items {
		price, err := kernel.NewMoney(priceCents)
		suite.Require().NoError(err)

		item, err := order.NewLineItem(kernel.NewUUID(), price, quantity)
		suite.Require().NoError(err)
		lineItems = append(lineItems, item)
	}

	testOrder, err := order.NewOrder(kernel.NewUUID(), customerID, lineItems)
	suite.Require().NoError(err)
	return testOrder
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}

// mockAggregateTracker satisfies the repositories' tracker dependency for test purposes.
// Tracking is irrelevant for read model tests.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
}
