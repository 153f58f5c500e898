package commands_test

import (
	"context"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/account"
	"pizzeria/internal/core/domain/model/affiliation"
	"pizzeria/internal/core/domain/model/flavor"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) GetOldestReadyForEstablishment(
	ctx context.Context, establishmentID kernel.UUID,
) (*order.Order, error) {
	args := m.Called(ctx, establishmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllReady(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllForCustomer(
	ctx context.Context, customerID kernel.UUID,
) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockAffiliationRepository struct{ mock.Mock }

func (m *MockAffiliationRepository) Add(ctx context.Context, a *affiliation.Affiliation) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAffiliationRepository) Update(ctx context.Context, a *affiliation.Affiliation) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAffiliationRepository) Get(
	ctx context.Context, id kernel.UUID,
) (*affiliation.Affiliation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*affiliation.Affiliation), args.Error(1)
}

func (m *MockAffiliationRepository) GetAllByCourierAndEstablishment(
	ctx context.Context, courierID, establishmentID kernel.UUID,
) ([]*affiliation.Affiliation, error) {
	args := m.Called(ctx, courierID, establishmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*affiliation.Affiliation), args.Error(1)
}

func (m *MockAffiliationRepository) GetOldestActiveForEstablishment(
	ctx context.Context, establishmentID kernel.UUID,
) (*affiliation.Affiliation, error) {
	args := m.Called(ctx, establishmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*affiliation.Affiliation), args.Error(1)
}

func (m *MockAffiliationRepository) GetDeliveringByCourierAndEstablishment(
	ctx context.Context, courierID, establishmentID kernel.UUID,
) (*affiliation.Affiliation, error) {
	args := m.Called(ctx, courierID, establishmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*affiliation.Affiliation), args.Error(1)
}

type MockFlavorRepository struct{ mock.Mock }

func (m *MockFlavorRepository) Add(ctx context.Context, f *flavor.Flavor) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFlavorRepository) Update(ctx context.Context, f *flavor.Flavor) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFlavorRepository) Get(ctx context.Context, id kernel.UUID) (*flavor.Flavor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*flavor.Flavor), args.Error(1)
}

func (m *MockFlavorRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*flavor.Flavor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*flavor.Flavor), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *account.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*account.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Customer), args.Error(1)
}

type MockEstablishmentRepository struct{ mock.Mock }

func (m *MockEstablishmentRepository) Add(ctx context.Context, e *account.Establishment) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEstablishmentRepository) Get(
	ctx context.Context, id kernel.UUID,
) (*account.Establishment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Establishment), args.Error(1)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *account.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*account.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Courier), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) AffiliationRepository() ports.AffiliationRepository {
	args := m.Called()
	return args.Get(0).(ports.AffiliationRepository)
}

func (m *MockUoW) FlavorRepository() ports.FlavorRepository {
	args := m.Called()
	return args.Get(0).(ports.FlavorRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) EstablishmentRepository() ports.EstablishmentRepository {
	args := m.Called()
	return args.Get(0).(ports.EstablishmentRepository)
}

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) OrderDispatched(ctx context.Context, o *order.Order, courier *account.Courier) error {
	args := m.Called(ctx, o, courier)
	return args.Error(0)
}

func (m *MockNotifier) CouriersUnavailable(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockNotifier) OrderDelivered(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockNotifier) FlavorAvailable(
	ctx context.Context, customerIDs []kernel.UUID, f *flavor.Flavor,
) error {
	args := m.Called(ctx, customerIDs, f)
	return args.Error(0)
}
