package account

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// ErrEstablishmentIsNotConstructed is returned when an Establishment was not
// created through its constructor.
var ErrEstablishmentIsNotConstructed = errors.New(
	"Establishment must be created via NewEstablishment constructor")

// Establishment is a pizzeria account. It owns a menu of flavors and decides
// on courier affiliation requests.
type Establishment struct {
	id         kernel.UUID
	name       string
	accessCode string

	guard guard.ConstructorGuard
}

// NewEstablishment creates a validated Establishment account.
func NewEstablishment(id kernel.UUID, name, accessCode string) (*Establishment, error) {
	e := &Establishment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setID(id),
		e.setName(name),
		e.setAccessCode(accessCode),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// Validate ensures the Establishment instance was properly constructed.
func (e *Establishment) Validate() error {
	if e == nil {
		return ErrEstablishmentIsNotConstructed
	}
	return e.guard.Validate(ErrEstablishmentIsNotConstructed)
}

// IsEqual compares two establishments by their unique identifiers.
func (e *Establishment) IsEqual(other *Establishment) bool {
	return other != nil && e.id.IsEqual(other.id)
}

// ID returns the establishment's unique identifier.
func (e *Establishment) ID() kernel.UUID {
	return e.id
}

// Name returns the establishment's display name.
func (e *Establishment) Name() string {
	return e.name
}

// AccessCode returns the establishment's access code for persistence.
func (e *Establishment) AccessCode() string {
	return e.accessCode
}

// CheckAccessCode authorizes an operation on behalf of this establishment.
func (e *Establishment) CheckAccessCode(code string) error {
	return checkAccessCode(e.accessCode, code)
}

func (e *Establishment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Establishment) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("establishment name")
	}
	e.name = name
	return nil
}

func (e *Establishment) setAccessCode(code string) error {
	if err := validateAccessCode(code); err != nil {
		return err
	}
	e.accessCode = code
	return nil
}
