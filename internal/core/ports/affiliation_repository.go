package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/affiliation"
	"pizzeria/internal/core/domain/model/kernel"
)

// AffiliationRepository defines the persistence contract for affiliation
// aggregates.
type AffiliationRepository interface {
	// Add persists a new affiliation aggregate to storage.
	Add(ctx context.Context, aggregate *affiliation.Affiliation) error

	// Update persists changes to an existing affiliation aggregate.
	Update(ctx context.Context, aggregate *affiliation.Affiliation) error

	// Get retrieves an affiliation aggregate by its unique identifier.
	// Returns an ObjectNotFoundError if no such affiliation exists.
	Get(ctx context.Context, id kernel.UUID) (*affiliation.Affiliation, error)

	// GetAllByCourierAndEstablishment retrieves every affiliation for the
	// given courier/establishment pair, including rejected ones. Used for
	// the duplicate-request conflict check.
	GetAllByCourierAndEstablishment(
		ctx context.Context, courierID, establishmentID kernel.UUID) ([]*affiliation.Affiliation, error)

	// GetOldestActiveForEstablishment retrieves the approved Active
	// affiliation of the establishment whose courier waited longest: ordered
	// by last-delivery time ascending with never-delivered couriers first,
	// ties broken by id. Returns nil if no courier is available.
	//
	// The returned row is locked for the duration of the surrounding
	// transaction so two concurrent assignments cannot claim the same
	// courier.
	GetOldestActiveForEstablishment(
		ctx context.Context, establishmentID kernel.UUID) (*affiliation.Affiliation, error)

	// GetDeliveringByCourierAndEstablishment retrieves the Delivering
	// affiliation of the pair, or nil if the courier is not delivering for
	// that establishment. Used to release the courier after delivery.
	GetDeliveringByCourierAndEstablishment(
		ctx context.Context, courierID, establishmentID kernel.UUID) (*affiliation.Affiliation, error)
}
