package commands_test

import (
	"testing"
	"time"

	"pizzeria/internal/core/domain/model/account"
	"pizzeria/internal/core/domain/model/affiliation"
	"pizzeria/internal/core/domain/model/flavor"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	customerCode      = "123456"
	establishmentCode = "654321"
	courierCode       = "111222"
)

func testCustomer(t *testing.T, id kernel.UUID) *account.Customer {
	t.Helper()

	customer, err := account.NewCustomer(id, "Alice", "123 Main St", customerCode)
	require.NoError(t, err)

	return customer
}

func testEstablishment(t *testing.T, id kernel.UUID) *account.Establishment {
	t.Helper()

	establishment, err := account.NewEstablishment(id, "Pizza Palace", establishmentCode)
	require.NoError(t, err)

	return establishment
}

func testCourierAccount(t *testing.T, id kernel.UUID) *account.Courier {
	t.Helper()

	vehicle, err := account.NewVehicle("ABC-1234", account.Motorcycle, "black")
	require.NoError(t, err)

	courier, err := account.NewCourier(id, "Bob", vehicle, courierCode)
	require.NoError(t, err)

	return courier
}

func testPizza(t *testing.T, flavorIDs ...kernel.UUID) order.Pizza {
	t.Helper()

	if len(flavorIDs) == 0 {
		flavorIDs = []kernel.UUID{kernel.NewUUID()}
	}
	pizza, err := order.NewPizza(order.Large, flavorIDs)
	require.NoError(t, err)

	return pizza
}

func receivedOrder(t *testing.T, orderID, customerID, establishmentID kernel.UUID) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		orderID, customerID, establishmentID,
		"123 Main St", []order.Pizza{testPizza(t)}, 100.0, time.Now(),
	)
	require.NoError(t, err)

	return o
}

func preparingOrder(t *testing.T, orderID, customerID, establishmentID kernel.UUID) *order.Order {
	t.Helper()

	o := receivedOrder(t, orderID, customerID, establishmentID)
	require.NoError(t, o.ConfirmPayment(order.Credit))

	return o
}

func readyOrder(t *testing.T, orderID, customerID, establishmentID kernel.UUID) *order.Order {
	t.Helper()

	o := preparingOrder(t, orderID, customerID, establishmentID)
	require.NoError(t, o.FinishPreparation())

	return o
}

func inTransitOrder(t *testing.T, orderID, customerID, establishmentID, courierID kernel.UUID) *order.Order {
	t.Helper()

	o := readyOrder(t, orderID, customerID, establishmentID)
	require.NoError(t, o.Dispatch(courierID))

	return o
}

func activeAffiliation(t *testing.T, affiliationID, courierID, establishmentID kernel.UUID) *affiliation.Affiliation {
	t.Helper()

	a, err := affiliation.NewAffiliation(affiliationID, courierID, establishmentID)
	require.NoError(t, err)
	require.NoError(t, a.UpdateApproval(affiliation.Approved))
	require.NoError(t, a.UpdateAvailability(affiliation.Active))

	return a
}

func deliveringAffiliation(t *testing.T, affiliationID, courierID, establishmentID kernel.UUID) *affiliation.Affiliation {
	t.Helper()

	a := activeAffiliation(t, affiliationID, courierID, establishmentID)
	require.NoError(t, a.StartDelivering())

	return a
}

func availableFlavor(t *testing.T, flavorID, establishmentID kernel.UUID) *flavor.Flavor {
	t.Helper()

	f, err := flavor.NewFlavor(flavorID, establishmentID, "Margherita", flavor.Savory, 40.0, 60.0)
	require.NoError(t, err)

	return f
}

func unavailableFlavor(t *testing.T, flavorID, establishmentID kernel.UUID) *flavor.Flavor {
	t.Helper()

	f := availableFlavor(t, flavorID, establishmentID)
	f.UpdateAvailability(false)

	return f
}

// uowWithRepos wires a MockUoW that hands out the given repositories and
// accepts Begin/Rollback any number of times.
func uowWithRepos(
	orderRepo *MockOrderRepository,
	affiliationRepo *MockAffiliationRepository,
	flavorRepo *MockFlavorRepository,
	customerRepo *MockCustomerRepository,
	establishmentRepo *MockEstablishmentRepository,
	courierRepo *MockCourierRepository,
) *MockUoW {
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	if orderRepo != nil {
		uow.On("OrderRepository").Return(orderRepo)
	}
	if affiliationRepo != nil {
		uow.On("AffiliationRepository").Return(affiliationRepo)
	}
	if flavorRepo != nil {
		uow.On("FlavorRepository").Return(flavorRepo)
	}
	if customerRepo != nil {
		uow.On("CustomerRepository").Return(customerRepo)
	}
	if establishmentRepo != nil {
		uow.On("EstablishmentRepository").Return(establishmentRepo)
	}
	if courierRepo != nil {
		uow.On("CourierRepository").Return(courierRepo)
	}
	return uow
}
