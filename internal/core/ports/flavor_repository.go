package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/flavor"
	"pizzeria/internal/core/domain/model/kernel"
)

// FlavorRepository defines the persistence contract for flavor aggregates,
// including their registered interest sets.
type FlavorRepository interface {
	// Add persists a new flavor aggregate to storage.
	Add(ctx context.Context, aggregate *flavor.Flavor) error

	// Update persists changes to an existing flavor aggregate. The stored
	// interest set is replaced by the aggregate's current one.
	Update(ctx context.Context, aggregate *flavor.Flavor) error

	// Get retrieves a flavor aggregate by its unique identifier.
	// Returns an ObjectNotFoundError if no such flavor exists.
	Get(ctx context.Context, id kernel.UUID) (*flavor.Flavor, error)

	// GetForUpdate retrieves a flavor by id with a row lock held for the
	// duration of the surrounding transaction. Used by interest
	// registration and the availability flip so the drain of the interest
	// set is atomic.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*flavor.Flavor, error)
}
