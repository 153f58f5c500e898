// Package accountrepo provides data transfer objects and mapping functions
// for the three account kinds: customers, establishments, and couriers.
// Accounts are read-mostly; commands load them to verify access codes.
package accountrepo

import (
	"pizzeria/internal/core/domain/model/account"
	"pizzeria/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customers.
type CustomerDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string
	Address    string
	AccessCode string
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

func customerFromDomain(aggregate *account.Customer) CustomerDTO {
	return CustomerDTO{
		ID:         aggregate.ID().Bytes(),
		Name:       aggregate.Name(),
		Address:    aggregate.Address(),
		AccessCode: aggregate.AccessCode(),
	}
}

func customerToDomain(dto CustomerDTO) (*account.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.NewCustomer(id, dto.Name, dto.Address, dto.AccessCode)
}

// EstablishmentDTO represents the database structure for persisting
// establishments.
type EstablishmentDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string
	AccessCode string
}

// TableName specifies the database table name for establishment entities.
func (EstablishmentDTO) TableName() string {
	return "establishments"
}

func establishmentFromDomain(aggregate *account.Establishment) EstablishmentDTO {
	return EstablishmentDTO{
		ID:         aggregate.ID().Bytes(),
		Name:       aggregate.Name(),
		AccessCode: aggregate.AccessCode(),
	}
}

func establishmentToDomain(dto EstablishmentDTO) (*account.Establishment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.NewEstablishment(id, dto.Name, dto.AccessCode)
}

// CourierDTO represents the database structure for persisting couriers,
// with the vehicle embedded in the courier row.
type CourierDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	VehiclePlate string
	VehicleKind  int
	VehicleColor string
	AccessCode   string
}

// TableName specifies the database table name for courier entities.
func (CourierDTO) TableName() string {
	return "couriers"
}

func courierFromDomain(aggregate *account.Courier) CourierDTO {
	return CourierDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		VehiclePlate: aggregate.Vehicle().Plate(),
		VehicleKind:  int(aggregate.Vehicle().Kind()),
		VehicleColor: aggregate.Vehicle().Color(),
		AccessCode:   aggregate.AccessCode(),
	}
}

func courierToDomain(dto CourierDTO) (*account.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicle, err := account.NewVehicle(
		dto.VehiclePlate, account.VehicleKind(dto.VehicleKind), dto.VehicleColor)
	if err != nil {
		return nil, err
	}

	return account.NewCourier(id, dto.Name, vehicle, dto.AccessCode)
}
