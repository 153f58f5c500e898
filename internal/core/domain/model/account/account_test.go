package account_test

import (
	"testing"

	"pizzeria/internal/core/domain/model/account"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVehicle(t *testing.T) account.Vehicle {
	t.Helper()

	vehicle, err := account.NewVehicle("ABC-1234", account.Motorcycle, "black")
	require.NoError(t, err)

	return vehicle
}

func TestNewCustomer(t *testing.T) {
	t.Run("should create valid customer", func(t *testing.T) {
		id := kernel.NewUUID()

		customer, err := account.NewCustomer(id, "Alice", "123 Main St", "123456")

		require.NoError(t, err)
		assert.Equal(t, id, customer.ID())
		assert.Equal(t, "Alice", customer.Name())
		assert.Equal(t, "123 Main St", customer.Address())
		assert.Equal(t, "123456", customer.AccessCode())
	})

	t.Run("should return error for invalid parameters", func(t *testing.T) {
		_, err := account.NewCustomer(kernel.UUID{}, "Alice", "123 Main St", "123456")
		require.Error(t, err)

		_, err = account.NewCustomer(kernel.NewUUID(), "", "123 Main St", "123456")
		require.Error(t, err)

		_, err = account.NewCustomer(kernel.NewUUID(), "Alice", "", "123456")
		require.Error(t, err)
	})
}

func TestAccessCodeValidation(t *testing.T) {
	t.Run("should reject malformed access codes", func(t *testing.T) {
		for _, code := range []string{"", "12345", "1234567", "12345a"} {
			_, err := account.NewCustomer(kernel.NewUUID(), "Alice", "123 Main St", code)

			require.Error(t, err, "code %q", code)
		}
	})
}

func TestCheckAccessCode(t *testing.T) {
	t.Run("should accept the matching code", func(t *testing.T) {
		customer, err := account.NewCustomer(kernel.NewUUID(), "Alice", "123 Main St", "123456")
		require.NoError(t, err)

		require.NoError(t, customer.CheckAccessCode("123456"))
	})

	t.Run("should return unauthorized for a wrong code", func(t *testing.T) {
		customer, err := account.NewCustomer(kernel.NewUUID(), "Alice", "123 Main St", "123456")
		require.NoError(t, err)

		err = customer.CheckAccessCode("654321")

		require.ErrorIs(t, err, errs.ErrUnauthorized)
		assert.Contains(t, err.Error(), "invalid access code")
	})
}

func TestNewEstablishment(t *testing.T) {
	t.Run("should create valid establishment", func(t *testing.T) {
		id := kernel.NewUUID()

		establishment, err := account.NewEstablishment(id, "Pizza Palace", "654321")

		require.NoError(t, err)
		assert.Equal(t, id, establishment.ID())
		assert.Equal(t, "Pizza Palace", establishment.Name())
		require.NoError(t, establishment.CheckAccessCode("654321"))
	})

	t.Run("should return error for missing name", func(t *testing.T) {
		_, err := account.NewEstablishment(kernel.NewUUID(), "", "654321")

		require.Error(t, err)
	})
}

func TestNewCourier(t *testing.T) {
	t.Run("should create valid courier", func(t *testing.T) {
		id := kernel.NewUUID()
		vehicle := testVehicle(t)

		courier, err := account.NewCourier(id, "Bob", vehicle, "111222")

		require.NoError(t, err)
		assert.Equal(t, id, courier.ID())
		assert.Equal(t, "Bob", courier.Name())
		assert.Equal(t, vehicle, courier.Vehicle())
	})

	t.Run("should return error for zero value vehicle", func(t *testing.T) {
		_, err := account.NewCourier(kernel.NewUUID(), "Bob", account.Vehicle{}, "111222")

		require.Error(t, err)
	})
}

func TestVehicle(t *testing.T) {
	t.Run("should describe the vehicle for notifications", func(t *testing.T) {
		vehicle := testVehicle(t)

		assert.Equal(t, "black motorcycle, plate ABC-1234", vehicle.Description())
	})

	t.Run("should parse vehicle kind names", func(t *testing.T) {
		kind, err := account.VehicleKindFromString("Car")
		require.NoError(t, err)
		assert.Equal(t, account.Car, kind)

		kind, err = account.VehicleKindFromString("motorcycle")
		require.NoError(t, err)
		assert.Equal(t, account.Motorcycle, kind)

		_, err = account.VehicleKindFromString("bicycle")
		require.Error(t, err)
	})

	t.Run("should return error for invalid parameters", func(t *testing.T) {
		_, err := account.NewVehicle("", account.Car, "red")
		require.Error(t, err)

		_, err = account.NewVehicle("ABC-1234", account.VehicleKindUnknown, "red")
		require.Error(t, err)

		_, err = account.NewVehicle("ABC-1234", account.Car, "")
		require.Error(t, err)
	})
}
