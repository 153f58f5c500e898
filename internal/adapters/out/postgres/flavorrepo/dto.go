// Package flavorrepo provides data transfer objects and mapping functions
// for flavor persistence, including the set of customers registered for an
// availability notification.
package flavorrepo

import (
	"encoding/json"

	"pizzeria/internal/core/domain/model/flavor"
	"pizzeria/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// FlavorDTO represents the database structure for persisting flavor
// aggregates. The interest registrations travel with the flavor row, so the
// drain on an availability flip happens under the same row lock.
type FlavorDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	EstablishmentID uuid.UUID `gorm:"type:uuid;index"`
	Name            string
	Kind            int
	PriceMedium     float64
	PriceLarge      float64
	Available       bool
	Interested      []byte `gorm:"type:jsonb"`
}

// TableName specifies the database table name for flavor entities.
func (FlavorDTO) TableName() string {
	return "flavors"
}

// fromDomain converts a flavor aggregate to its database representation.
func fromDomain(aggregate *flavor.Flavor) (FlavorDTO, error) {
	interestedIDs := make([]uuid.UUID, 0, len(aggregate.Interested()))
	for _, customerID := range aggregate.Interested() {
		interestedIDs = append(interestedIDs, customerID.Bytes())
	}

	interested, err := json.Marshal(interestedIDs)
	if err != nil {
		return FlavorDTO{}, err
	}

	return FlavorDTO{
		ID:              aggregate.ID().Bytes(),
		EstablishmentID: aggregate.EstablishmentID().Bytes(),
		Name:            aggregate.Name(),
		Kind:            int(aggregate.Kind()),
		PriceMedium:     aggregate.PriceMedium(),
		PriceLarge:      aggregate.PriceLarge(),
		Available:       aggregate.IsAvailable(),
		Interested:      interested,
	}, nil
}

// toDomain converts a database DTO back to a flavor aggregate.
func toDomain(dto FlavorDTO) (*flavor.Flavor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	establishmentID, err := kernel.UUIDFromBytes(dto.EstablishmentID[:])
	if err != nil {
		return nil, err
	}

	var interestedIDs []uuid.UUID
	if err = json.Unmarshal(dto.Interested, &interestedIDs); err != nil {
		return nil, err
	}

	interested := make([]kernel.UUID, 0, len(interestedIDs))
	for _, raw := range interestedIDs {
		customerID, customerErr := kernel.UUIDFromBytes(raw[:])
		if customerErr != nil {
			return nil, customerErr
		}
		interested = append(interested, customerID)
	}

	return flavor.RestoreFlavor(
		id, establishmentID, dto.Name, flavor.Kind(dto.Kind),
		dto.PriceMedium, dto.PriceLarge, dto.Available, interested,
	)
}
