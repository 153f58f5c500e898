package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrUpdateFlavorAvailabilityCommandIsNotConstructed = errors.New(
	"UpdateFlavorAvailabilityCommand must be created via NewUpdateFlavorAvailabilityCommand constructor",
)

// UpdateFlavorAvailabilityCommand represents an establishment flipping a
// menu flavor's availability.
type UpdateFlavorAvailabilityCommand struct { //nolint:recvcheck //using for validation
	flavorID        kernel.UUID
	establishmentID kernel.UUID
	accessCode      string
	available       bool

	guard guard.ConstructorGuard
}

// NewUpdateFlavorAvailabilityCommand creates a command to change a flavor's
// availability.
func NewUpdateFlavorAvailabilityCommand(
	flavorID, establishmentID kernel.UUID,
	accessCode string,
	available bool,
) (UpdateFlavorAvailabilityCommand, error) {
	cmd := UpdateFlavorAvailabilityCommand{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFlavorID(flavorID),
		cmd.setEstablishmentID(establishmentID),
		cmd.setAccessCode(accessCode),
	); err != nil {
		return UpdateFlavorAvailabilityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateFlavorAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateFlavorAvailabilityCommandIsNotConstructed)
}

// FlavorID returns the flavor being updated.
func (c UpdateFlavorAvailabilityCommand) FlavorID() kernel.UUID {
	return c.flavorID
}

// EstablishmentID returns the owning establishment.
func (c UpdateFlavorAvailabilityCommand) EstablishmentID() kernel.UUID {
	return c.establishmentID
}

// AccessCode returns the establishment's presented access code.
func (c UpdateFlavorAvailabilityCommand) AccessCode() string {
	return c.accessCode
}

// Available returns the requested availability.
func (c UpdateFlavorAvailabilityCommand) Available() bool {
	return c.available
}

func (c *UpdateFlavorAvailabilityCommand) setFlavorID(flavorID kernel.UUID) error {
	if err := flavorID.Validate(); err != nil {
		return err
	}

	c.flavorID = flavorID
	return nil
}

func (c *UpdateFlavorAvailabilityCommand) setEstablishmentID(establishmentID kernel.UUID) error {
	if err := establishmentID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("establishment id is invalid", err)
	}

	c.establishmentID = establishmentID
	return nil
}

func (c *UpdateFlavorAvailabilityCommand) setAccessCode(accessCode string) error {
	if accessCode == "" {
		return errs.NewValueIsRequiredError("access code")
	}

	c.accessCode = accessCode
	return nil
}
