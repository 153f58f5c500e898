package affiliationrepo

import (
	"context"
	"errors"

	"pizzeria/internal/core/domain/model/affiliation"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAffiliationRepository implements AffiliationRepository using GORM.
type GormAffiliationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAffiliationRepository creates a new GORM affiliation repository.
func NewGormAffiliationRepository(db *gorm.DB, tracker aggregateTracker) *GormAffiliationRepository {
	return &GormAffiliationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new affiliation to the database.
func (r *GormAffiliationRepository) Add(ctx context.Context, aggregate *affiliation.Affiliation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing affiliation to the database.
func (r *GormAffiliationRepository) Update(ctx context.Context, aggregate *affiliation.Affiliation) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AffiliationDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an affiliation by ID.
func (r *GormAffiliationRepository) Get(ctx context.Context, id kernel.UUID) (*affiliation.Affiliation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AffiliationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("affiliation", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByCourierAndEstablishment retrieves every affiliation between the
// courier and the establishment, in any approval status.
func (r *GormAffiliationRepository) GetAllByCourierAndEstablishment(
	ctx context.Context, courierID, establishmentID kernel.UUID,
) ([]*affiliation.Affiliation, error) {
	if err := errors.Join(courierID.Validate(), establishmentID.Validate()); err != nil {
		return nil, err
	}

	var dtos []AffiliationDTO
	err := r.db.WithContext(ctx).
		Where("courier_id = ? AND establishment_id = ?", courierID.Bytes(), establishmentID.Bytes()).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	affiliations := make([]*affiliation.Affiliation, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		affiliations = append(affiliations, a)
	}

	return affiliations, nil
}

// GetOldestActiveForEstablishment retrieves the establishment's Active
// courier affiliation that has waited longest since its last delivery and
// locks its row. Couriers that have never delivered sort first. Returns nil
// without error when no courier is Active.
func (r *GormAffiliationRepository) GetOldestActiveForEstablishment(
	ctx context.Context, establishmentID kernel.UUID,
) (*affiliation.Affiliation, error) {
	if err := establishmentID.Validate(); err != nil {
		return nil, err
	}

	var dto AffiliationDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("establishment_id = ? AND approval = ? AND availability = ?",
			establishmentID.Bytes(), affiliation.Approved, affiliation.Active).
		Order("last_delivery ASC NULLS FIRST, id").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetDeliveringByCourierAndEstablishment retrieves the courier's Delivering
// affiliation with the establishment and locks its row. Returns nil without
// error when the courier is not currently delivering for the establishment.
func (r *GormAffiliationRepository) GetDeliveringByCourierAndEstablishment(
	ctx context.Context, courierID, establishmentID kernel.UUID,
) (*affiliation.Affiliation, error) {
	if err := errors.Join(courierID.Validate(), establishmentID.Validate()); err != nil {
		return nil, err
	}

	var dto AffiliationDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("courier_id = ? AND establishment_id = ? AND availability = ?",
			courierID.Bytes(), establishmentID.Bytes(), affiliation.Delivering).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}
