package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"pizzeria/internal/adapters/out/postgres/orderrepo"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers to verify persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
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

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(
	establishmentID kernel.UUID, createdAt time.Time, status order.Status,
) *order.Order {
	pizza, err := order.NewPizza(order.Large, []kernel.UUID{kernel.NewUUID()})
	suite.Require().NoError(err)

	paid := status != order.Received
	testOrder, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), establishmentID, nil,
		"123 Main St", []order.Pizza{pizza}, 60.0, paid, createdAt, status,
	)
	suite.Require().NoError(err)

	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(kernel.NewUUID(), time.Now(), order.Received)

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTripsAggregate() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(kernel.NewUUID(), time.Now().UTC().Truncate(time.Microsecond), order.Received)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.True(loaded.IsEqual(testOrder))
	suite.Equal(testOrder.CustomerID(), loaded.CustomerID())
	suite.Equal(testOrder.EstablishmentID(), loaded.EstablishmentID())
	suite.Equal(testOrder.DeliveryAddress(), loaded.DeliveryAddress())
	suite.Equal(testOrder.Status(), loaded.Status())
	suite.Equal(testOrder.IsPaid(), loaded.IsPaid())
	suite.InDelta(testOrder.Total(), loaded.Total(), 0.001)
	suite.Require().Len(loaded.Pizzas(), 1)
	suite.Equal(testOrder.Pizzas()[0].Size(), loaded.Pizzas()[0].Size())
	suite.Equal(testOrder.Pizzas()[0].FlavorIDs(), loaded.Pizzas()[0].FlavorIDs())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsLifecycleTransition() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(kernel.NewUUID(), time.Now(), order.Received)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.ConfirmPayment(order.Pix))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InPreparation, loaded.Status())
	suite.True(loaded.IsPaid())
	suite.InDelta(57.0, loaded.Total(), 0.001)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsCourierAssignment() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(kernel.NewUUID(), time.Now(), order.Ready)
	courierID := kernel.NewUUID()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Dispatch(courierID))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.InTransit, loaded.Status())
	suite.Require().NotNil(loaded.Courier())
	suite.Equal(courierID, *loaded.Courier())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesOrder() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(kernel.NewUUID(), time.Now(), order.Received)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(suite.repository.Delete(ctx, testOrder.ID()))

	suite.assertOrderCount(0)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_NotFound() {
	ctx := context.Background()

	err := suite.repository.Delete(ctx, kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetOldestReadyForEstablishment_PicksOldest() {
	ctx := context.Background()
	establishmentID := kernel.NewUUID()
	base := time.Now().UTC().Truncate(time.Microsecond)

	newer := suite.createTestOrder(establishmentID, base, order.Ready)
	older := suite.createTestOrder(establishmentID, base.Add(-time.Hour), order.Ready)
	otherEstablishment := suite.createTestOrder(kernel.NewUUID(), base.Add(-2*time.Hour), order.Ready)
	notReady := suite.createTestOrder(establishmentID, base.Add(-3*time.Hour), order.InPreparation)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	for _, o := range []*order.Order{newer, older, otherEstablishment, notReady} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	found, err := suite.repository.GetOldestReadyForEstablishment(ctx, establishmentID)
	suite.Require().NoError(err)
	suite.Require().NotNil(found)
	suite.Equal(older.ID(), found.ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetOldestReadyForEstablishment_EmptyBacklog() {
	ctx := context.Background()

	found, err := suite.repository.GetOldestReadyForEstablishment(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Nil(found)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllReady_OldestFirst() {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Microsecond)

	second := suite.createTestOrder(kernel.NewUUID(), base, order.Ready)
	first := suite.createTestOrder(kernel.NewUUID(), base.Add(-time.Hour), order.Ready)
	delivered := suite.createTestOrder(kernel.NewUUID(), base.Add(-2*time.Hour), order.InPreparation)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	for _, o := range []*order.Order{second, first, delivered} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	ready, err := suite.repository.GetAllReady(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(ready, 2)
	suite.Equal(first.ID(), ready[0].ID())
	suite.Equal(second.ID(), ready[1].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllForCustomer_NewestFirst() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	base := time.Now().UTC().Truncate(time.Microsecond)

	pizza, err := order.NewPizza(order.Medium, []kernel.UUID{kernel.NewUUID()})
	suite.Require().NoError(err)

	older, err := order.RestoreOrder(
		kernel.NewUUID(), customerID, kernel.NewUUID(), nil,
		"123 Main St", []order.Pizza{pizza}, 40.0, false, base.Add(-time.Hour), order.Received,
	)
	suite.Require().NoError(err)
	newer, err := order.RestoreOrder(
		kernel.NewUUID(), customerID, kernel.NewUUID(), nil,
		"123 Main St", []order.Pizza{pizza}, 40.0, false, base, order.Received,
	)
	suite.Require().NoError(err)
	foreign := suite.createTestOrder(kernel.NewUUID(), base, order.Received)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	for _, o := range []*order.Order{older, newer, foreign} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	orders, err := suite.repository.GetAllForCustomer(ctx, customerID)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.Equal(newer.ID(), orders[0].ID())
	suite.Equal(older.ID(), orders[1].ID())
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
