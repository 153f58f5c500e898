package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/affiliation"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrUpdateAvailabilityCommandIsNotConstructed = errors.New(
	"UpdateAvailabilityCommand must be created via NewUpdateAvailabilityCommand constructor",
)

// UpdateAvailabilityCommand represents an approved courier flipping between
// Resting and Active for one establishment.
type UpdateAvailabilityCommand struct { //nolint:recvcheck //using for validation
	affiliationID kernel.UUID
	courierID     kernel.UUID
	accessCode    string
	availability  affiliation.Availability

	guard guard.ConstructorGuard
}

// NewUpdateAvailabilityCommand creates a command to change a courier's
// availability.
func NewUpdateAvailabilityCommand(
	affiliationID, courierID kernel.UUID,
	accessCode string,
	availability affiliation.Availability,
) (UpdateAvailabilityCommand, error) {
	cmd := UpdateAvailabilityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAffiliationID(affiliationID),
		cmd.setCourierID(courierID),
		cmd.setAccessCode(accessCode),
		cmd.setAvailability(availability),
	); err != nil {
		return UpdateAvailabilityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAvailabilityCommandIsNotConstructed)
}

// AffiliationID returns the affiliation being updated.
func (c UpdateAvailabilityCommand) AffiliationID() kernel.UUID {
	return c.affiliationID
}

// CourierID returns the courier changing availability.
func (c UpdateAvailabilityCommand) CourierID() kernel.UUID {
	return c.courierID
}

// AccessCode returns the courier's presented access code.
func (c UpdateAvailabilityCommand) AccessCode() string {
	return c.accessCode
}

// Availability returns the requested working state.
func (c UpdateAvailabilityCommand) Availability() affiliation.Availability {
	return c.availability
}

func (c *UpdateAvailabilityCommand) setAffiliationID(affiliationID kernel.UUID) error {
	if err := affiliationID.Validate(); err != nil {
		return err
	}

	c.affiliationID = affiliationID
	return nil
}

func (c *UpdateAvailabilityCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("courier id is invalid", err)
	}

	c.courierID = courierID
	return nil
}

func (c *UpdateAvailabilityCommand) setAccessCode(accessCode string) error {
	if accessCode == "" {
		return errs.NewValueIsRequiredError("access code")
	}

	c.accessCode = accessCode
	return nil
}

func (c *UpdateAvailabilityCommand) setAvailability(availability affiliation.Availability) error {
	if err := availability.Validate(); err != nil {
		return err
	}

	c.availability = availability
	return nil
}
