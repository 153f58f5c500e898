package accountrepo

import (
	"context"
	"errors"

	"pizzeria/internal/core/domain/model/account"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// Add saves a new customer to the database.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *account.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := customerFromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a customer by ID.
func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*account.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id.String())
		}
		return nil, err
	}

	return customerToDomain(dto)
}

// GormEstablishmentRepository implements EstablishmentRepository using GORM.
type GormEstablishmentRepository struct {
	db *gorm.DB
}

// NewGormEstablishmentRepository creates a new GORM establishment repository.
func NewGormEstablishmentRepository(db *gorm.DB) *GormEstablishmentRepository {
	return &GormEstablishmentRepository{db: db}
}

// Add saves a new establishment to the database.
func (r *GormEstablishmentRepository) Add(ctx context.Context, aggregate *account.Establishment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := establishmentFromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an establishment by ID.
func (r *GormEstablishmentRepository) Get(ctx context.Context, id kernel.UUID) (*account.Establishment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EstablishmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("establishment", id.String())
		}
		return nil, err
	}

	return establishmentToDomain(dto)
}

// GormCourierRepository implements CourierRepository using GORM.
type GormCourierRepository struct {
	db *gorm.DB
}

// NewGormCourierRepository creates a new GORM courier repository.
func NewGormCourierRepository(db *gorm.DB) *GormCourierRepository {
	return &GormCourierRepository{db: db}
}

// Add saves a new courier to the database.
func (r *GormCourierRepository) Add(ctx context.Context, aggregate *account.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := courierFromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a courier by ID.
func (r *GormCourierRepository) Get(ctx context.Context, id kernel.UUID) (*account.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CourierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", id.String())
		}
		return nil, err
	}

	return courierToDomain(dto)
}
