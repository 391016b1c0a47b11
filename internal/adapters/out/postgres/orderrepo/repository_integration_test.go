package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_PersistsOrderAndItems() {
	ctx := context.Background()

	testOrder := suite.createTestOrder(2)

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.assertItemCount(2)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_InvalidOrder_ReturnsError() {
	ctx := context.Background()

	err := suite.repository.Add(ctx, &order.Order{})
	suite.Require().Error(err)
	suite.ErrorIs(err, order.ErrOrderIsNotConstructed)

	suite.assertOrderCount(0)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrderWithItems() {
	ctx := context.Background()

	id := kernel.NewUUID()
	customerID := kernel.NewUUID()
	productID := kernel.NewUUID()

	price, err := kernel.NewMoney(1999)
	suite.Require().NoError(err)
	item, err := order.NewLineItem(productID, price, 3)
	suite.Require().NoError(err)

	originalOrder, err := order.NewOrder(id, customerID, []order.LineItem{item})
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", id, originalOrder).Once()

	err = suite.repository.Add(ctx, originalOrder)
	suite.Require().NoError(err)

	retrievedOrder, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)

	suite.Equal(id, retrievedOrder.ID())
	suite.Equal(customerID, retrievedOrder.CustomerID())

	items := retrievedOrder.LineItems()
	suite.Require().Len(items, 1)
	suite.Equal(productID, items[0].ProductID())
	suite.Equal(int64(1999), items[0].Price().Cents())
	suite.Equal(3, items[0].Quantity())

	suite.WithinDuration(originalOrder.CreatedAt(), retrievedOrder.CreatedAt(), time.Millisecond)
	suite.WithinDuration(originalOrder.UpdatedAt(), retrievedOrder.UpdatedAt(), time.Millisecond)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	nonExistentID := kernel.NewUUID()
	retrievedOrder, err := suite.repository.Get(ctx, nonExistentID)

	suite.Nil(retrievedOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_InvalidUUID_ReturnsError() {
	ctx := context.Background()

	retrievedOrder, err := suite.repository.Get(ctx, kernel.UUID{})

	suite.Nil(retrievedOrder)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrValueIsRequired)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_PreservesPriceSnapshot() {
	ctx := context.Background()

	// Two orders referencing the same product at different prices. Each
	// order keeps the price it was created with.
	productID := kernel.NewUUID()

	firstPrice, _ := kernel.NewMoney(500)
	firstItem, _ := order.NewLineItem(productID, firstPrice, 1)
	firstOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.LineItem{firstItem})
	suite.Require().NoError(err)

	secondPrice, _ := kernel.NewMoney(750)
	secondItem, _ := order.NewLineItem(productID, secondPrice, 1)
	secondOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.LineItem{secondItem})
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", firstOrder.ID(), firstOrder).Once()
	suite.tracker.On("TrackAggregate", secondOrder.ID(), secondOrder).Once()

	suite.Require().NoError(suite.repository.Add(ctx, firstOrder))
	suite.Require().NoError(suite.repository.Add(ctx, secondOrder))

	retrievedFirst, err := suite.repository.Get(ctx, firstOrder.ID())
	suite.Require().NoError(err)
	retrievedSecond, err := suite.repository.Get(ctx, secondOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(int64(500), retrievedFirst.LineItems()[0].Price().Cents())
	suite.Equal(int64(750), retrievedSecond.LineItems()[0].Price().Cents())

	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrder creates a basic test order with the given number of line items.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(itemCount int) *order.Order {
	items := make([]order.LineItem, 0, itemCount)
	for i := range itemCount {
		price, err := kernel.NewMoney(int64(100 * (i + 1)))
		suite.Require().NoError(err)

		item, err := order.NewLineItem(kernel.NewUUID(), price, i+1)
		suite.Require().NoError(err)
		items = append(items, item)
	}

	testOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items)
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

// assertItemCount verifies the number of line item rows in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertItemCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderItemDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
