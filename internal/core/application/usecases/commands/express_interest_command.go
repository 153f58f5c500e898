package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrExpressInterestCommandIsNotConstructed = errors.New(
	"ExpressInterestCommand must be created via NewExpressInterestCommand constructor",
)

// ExpressInterestCommand represents a customer asking to be notified when an
// unavailable flavor comes back.
type ExpressInterestCommand struct { //nolint:recvcheck //using for validation
	flavorID   kernel.UUID
	customerID kernel.UUID
	accessCode string

	guard guard.ConstructorGuard
}

// NewExpressInterestCommand creates a command to register interest in a
// flavor.
func NewExpressInterestCommand(
	flavorID, customerID kernel.UUID,
	accessCode string,
) (ExpressInterestCommand, error) {
	cmd := ExpressInterestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFlavorID(flavorID),
		cmd.setCustomerID(customerID),
		cmd.setAccessCode(accessCode),
	); err != nil {
		return ExpressInterestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpressInterestCommand) Validate() error {
	return c.guard.Validate(ErrExpressInterestCommandIsNotConstructed)
}

// FlavorID returns the flavor of interest.
func (c ExpressInterestCommand) FlavorID() kernel.UUID {
	return c.flavorID
}

// CustomerID returns the interested customer.
func (c ExpressInterestCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// AccessCode returns the customer's presented access code.
func (c ExpressInterestCommand) AccessCode() string {
	return c.accessCode
}

func (c *ExpressInterestCommand) setFlavorID(flavorID kernel.UUID) error {
	if err := flavorID.Validate(); err != nil {
		return err
	}

	c.flavorID = flavorID
	return nil
}

func (c *ExpressInterestCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customer id is invalid", err)
	}

	c.customerID = customerID
	return nil
}

func (c *ExpressInterestCommand) setAccessCode(accessCode string) error {
	if accessCode == "" {
		return errs.NewValueIsRequiredError("access code")
	}

	c.accessCode = accessCode
	return nil
}
