// Package ports defines repository, unit-of-work, and notification
// interfaces for the pizzeria domain. These interfaces establish contracts
// between the domain layer and infrastructure, enabling dependency inversion
// and testability.
package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order by id with a row lock held for the
	// duration of the surrounding transaction, serializing concurrent
	// transitions on the same order.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order. Used by order cancellation only.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetOldestReadyForEstablishment retrieves the Ready order of the given
	// establishment with the earliest creation time, or nil if there is
	// none. Used by the backlog check when a courier becomes Active.
	GetOldestReadyForEstablishment(ctx context.Context, establishmentID kernel.UUID) (*order.Order, error)

	// GetAllReady retrieves every Ready order ordered by creation time.
	// Used by the background assignment sweep.
	GetAllReady(ctx context.Context) ([]*order.Order, error)

	// GetAllForCustomer retrieves every order of the given customer.
	GetAllForCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)
}
