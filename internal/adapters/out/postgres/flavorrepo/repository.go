package flavorrepo

import (
	"context"
	"errors"

	"pizzeria/internal/core/domain/model/flavor"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormFlavorRepository implements FlavorRepository using GORM.
type GormFlavorRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormFlavorRepository creates a new GORM flavor repository.
func NewGormFlavorRepository(db *gorm.DB, tracker aggregateTracker) *GormFlavorRepository {
	return &GormFlavorRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new flavor to the database.
func (r *GormFlavorRepository) Add(ctx context.Context, aggregate *flavor.Flavor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing flavor to the database.
func (r *GormFlavorRepository) Update(ctx context.Context, aggregate *flavor.Flavor) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&FlavorDTO{}).
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

// Get retrieves a flavor by ID.
func (r *GormFlavorRepository) Get(ctx context.Context, id kernel.UUID) (*flavor.Flavor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto FlavorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("flavor", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves a flavor by ID and locks its row for the rest of
// the transaction. Interest registrations and availability flips read
// through this method so the drain happens exactly once.
func (r *GormFlavorRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*flavor.Flavor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto FlavorDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("flavor", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
