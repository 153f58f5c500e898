package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/account"
	"pizzeria/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer accounts.
type CustomerRepository interface {
	// Add persists a new customer account.
	Add(ctx context.Context, customer *account.Customer) error

	// Get retrieves a customer account by its unique identifier.
	// Returns an ObjectNotFoundError if no such customer exists.
	Get(ctx context.Context, id kernel.UUID) (*account.Customer, error)
}

// EstablishmentRepository defines the persistence contract for establishment
// accounts.
type EstablishmentRepository interface {
	// Add persists a new establishment account.
	Add(ctx context.Context, establishment *account.Establishment) error

	// Get retrieves an establishment account by its unique identifier.
	// Returns an ObjectNotFoundError if no such establishment exists.
	Get(ctx context.Context, id kernel.UUID) (*account.Establishment, error)
}

// CourierRepository defines the persistence contract for courier accounts.
type CourierRepository interface {
	// Add persists a new courier account.
	Add(ctx context.Context, courier *account.Courier) error

	// Get retrieves a courier account by its unique identifier.
	// Returns an ObjectNotFoundError if no such courier exists.
	Get(ctx context.Context, id kernel.UUID) (*account.Courier, error)
}
