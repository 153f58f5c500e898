package account

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// ErrCourierIsNotConstructed is returned when a Courier was not created
// through its constructor.
var ErrCourierIsNotConstructed = errors.New(
	"Courier must be created via NewCourier constructor")

// Courier is a delivery-person account. A courier delivers for an
// establishment only through an approved affiliation.
type Courier struct {
	id         kernel.UUID
	name       string
	vehicle    Vehicle
	accessCode string

	guard guard.ConstructorGuard
}

// NewCourier creates a validated Courier account.
func NewCourier(id kernel.UUID, name string, vehicle Vehicle, accessCode string) (*Courier, error) {
	c := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setVehicle(vehicle),
		c.setAccessCode(accessCode),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Courier instance was properly constructed.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's display name.
func (c *Courier) Name() string {
	return c.name
}

// Vehicle returns the courier's delivery vehicle.
func (c *Courier) Vehicle() Vehicle {
	return c.vehicle
}

// AccessCode returns the courier's access code for persistence.
func (c *Courier) AccessCode() string {
	return c.accessCode
}

// CheckAccessCode authorizes an operation on behalf of this courier.
func (c *Courier) CheckAccessCode(code string) error {
	return checkAccessCode(c.accessCode, code)
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("courier name")
	}
	c.name = name
	return nil
}

func (c *Courier) setVehicle(vehicle Vehicle) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}
	c.vehicle = vehicle
	return nil
}

func (c *Courier) setAccessCode(code string) error {
	if err := validateAccessCode(code); err != nil {
		return err
	}
	c.accessCode = code
	return nil
}
