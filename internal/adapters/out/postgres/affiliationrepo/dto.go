// Package affiliationrepo provides data transfer objects and mapping
// functions for affiliation persistence. An affiliation row is the unit the
// assignment engine locks when claiming a courier, so the queries here are
// ordered and locked with care.
package affiliationrepo

import (
	"time"

	"pizzeria/internal/core/domain/model/affiliation"
	"pizzeria/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AffiliationDTO represents the database structure for persisting
// affiliation aggregates. LastDelivery stays NULL until the courier's first
// completed delivery, which sorts never-delivered couriers to the front of
// the claim query.
type AffiliationDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourierID       uuid.UUID `gorm:"type:uuid;index"`
	EstablishmentID uuid.UUID `gorm:"type:uuid;index"`
	Approval        int
	Availability    int `gorm:"index"`
	LastDelivery    *time.Time
}

// TableName specifies the database table name for affiliation entities.
func (AffiliationDTO) TableName() string {
	return "affiliations"
}

// fromDomain converts an affiliation aggregate to its database
// representation.
func fromDomain(aggregate *affiliation.Affiliation) AffiliationDTO {
	return AffiliationDTO{
		ID:              aggregate.ID().Bytes(),
		CourierID:       aggregate.CourierID().Bytes(),
		EstablishmentID: aggregate.EstablishmentID().Bytes(),
		Approval:        int(aggregate.Approval()),
		Availability:    int(aggregate.Availability()),
		LastDelivery:    aggregate.LastDelivery(),
	}
}

// toDomain converts a database DTO back to an affiliation aggregate.
func toDomain(dto AffiliationDTO) (*affiliation.Affiliation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}
	establishmentID, err := kernel.UUIDFromBytes(dto.EstablishmentID[:])
	if err != nil {
		return nil, err
	}

	return affiliation.RestoreAffiliation(
		id, courierID, establishmentID,
		affiliation.ApprovalStatus(dto.Approval),
		affiliation.Availability(dto.Availability),
		dto.LastDelivery,
	)
}
