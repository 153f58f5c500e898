package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrRequestAffiliationCommandIsNotConstructed = errors.New(
	"RequestAffiliationCommand must be created via NewRequestAffiliationCommand constructor",
)

// RequestAffiliationCommand represents a courier asking to deliver for an
// establishment. The request starts Pending until the establishment decides.
type RequestAffiliationCommand struct { //nolint:recvcheck //using for validation
	affiliationID   kernel.UUID
	courierID       kernel.UUID
	establishmentID kernel.UUID
	accessCode      string

	guard guard.ConstructorGuard
}

// NewRequestAffiliationCommand creates a command to request an affiliation.
func NewRequestAffiliationCommand(
	affiliationID, courierID, establishmentID kernel.UUID,
	accessCode string,
) (RequestAffiliationCommand, error) {
	cmd := RequestAffiliationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAffiliationID(affiliationID),
		cmd.setCourierID(courierID),
		cmd.setEstablishmentID(establishmentID),
		cmd.setAccessCode(accessCode),
	); err != nil {
		return RequestAffiliationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestAffiliationCommand) Validate() error {
	return c.guard.Validate(ErrRequestAffiliationCommandIsNotConstructed)
}

// AffiliationID returns the identifier for the new affiliation.
func (c RequestAffiliationCommand) AffiliationID() kernel.UUID {
	return c.affiliationID
}

// CourierID returns the requesting courier.
func (c RequestAffiliationCommand) CourierID() kernel.UUID {
	return c.courierID
}

// EstablishmentID returns the establishment being requested.
func (c RequestAffiliationCommand) EstablishmentID() kernel.UUID {
	return c.establishmentID
}

// AccessCode returns the courier's presented access code.
func (c RequestAffiliationCommand) AccessCode() string {
	return c.accessCode
}

func (c *RequestAffiliationCommand) setAffiliationID(affiliationID kernel.UUID) error {
	if err := affiliationID.Validate(); err != nil {
		return err
	}

	c.affiliationID = affiliationID
	return nil
}

func (c *RequestAffiliationCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("courier id is invalid", err)
	}

	c.courierID = courierID
	return nil
}

func (c *RequestAffiliationCommand) setEstablishmentID(establishmentID kernel.UUID) error {
	if err := establishmentID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("establishment id is invalid", err)
	}

	c.establishmentID = establishmentID
	return nil
}

func (c *RequestAffiliationCommand) setAccessCode(accessCode string) error {
	if accessCode == "" {
		return errs.NewValueIsRequiredError("access code")
	}

	c.accessCode = accessCode
	return nil
}
