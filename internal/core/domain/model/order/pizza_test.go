package order_test

import (
	"testing"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeFromString(t *testing.T) {
	t.Run("should parse size names", func(t *testing.T) {
		size, err := order.SizeFromString("medium")
		require.NoError(t, err)
		assert.Equal(t, order.Medium, size)

		size, err = order.SizeFromString("Large")
		require.NoError(t, err)
		assert.Equal(t, order.Large, size)
	})

	t.Run("should reject unknown size names", func(t *testing.T) {
		size, err := order.SizeFromString("extra large")

		require.Error(t, err)
		assert.Equal(t, order.SizeUnknown, size)
	})
}

func TestNewPizza(t *testing.T) {
	t.Run("should create medium pizza with one flavor", func(t *testing.T) {
		flavorID := kernel.NewUUID()

		pizza, err := order.NewPizza(order.Medium, []kernel.UUID{flavorID})

		require.NoError(t, err)
		assert.Equal(t, order.Medium, pizza.Size())
		assert.Equal(t, []kernel.UUID{flavorID}, pizza.FlavorIDs())
	})

	t.Run("should create large half-and-half pizza", func(t *testing.T) {
		flavorIDs := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

		pizza, err := order.NewPizza(order.Large, flavorIDs)

		require.NoError(t, err)
		assert.Equal(t, flavorIDs, pizza.FlavorIDs())
	})

	t.Run("should reject two flavors on medium pizza", func(t *testing.T) {
		_, err := order.NewPizza(order.Medium, []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "only a large pizza can have two flavors")
	})

	t.Run("should reject empty and oversized flavor lists", func(t *testing.T) {
		_, err := order.NewPizza(order.Large, nil)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = order.NewPizza(order.Large, []kernel.UUID{
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		})
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject invalid size", func(t *testing.T) {
		_, err := order.NewPizza(order.SizeUnknown, []kernel.UUID{kernel.NewUUID()})

		require.Error(t, err)
	})

	t.Run("should reject invalid flavor id", func(t *testing.T) {
		_, err := order.NewPizza(order.Medium, []kernel.UUID{{}})

		require.Error(t, err)
	})

	t.Run("should copy the flavor slice", func(t *testing.T) {
		flavorIDs := []kernel.UUID{kernel.NewUUID()}
		pizza, err := order.NewPizza(order.Medium, flavorIDs)
		require.NoError(t, err)

		flavorIDs[0] = kernel.NewUUID()

		assert.NotEqual(t, flavorIDs[0], pizza.FlavorIDs()[0])
	})
}

func TestPizza_Validate(t *testing.T) {
	t.Run("should reject zero value pizza", func(t *testing.T) {
		require.Error(t, order.Pizza{}.Validate())
	})

	t.Run("should accept constructed pizza", func(t *testing.T) {
		pizza, err := order.NewPizza(order.Medium, []kernel.UUID{kernel.NewUUID()})
		require.NoError(t, err)

		require.NoError(t, pizza.Validate())
	})
}
