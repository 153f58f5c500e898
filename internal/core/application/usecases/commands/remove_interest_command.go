package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrRemoveInterestCommandIsNotConstructed = errors.New(
	"RemoveInterestCommand must be created via NewRemoveInterestCommand constructor",
)

// RemoveInterestCommand represents a customer withdrawing a flavor interest
// registration.
type RemoveInterestCommand struct { //nolint:recvcheck //using for validation
	flavorID   kernel.UUID
	customerID kernel.UUID
	accessCode string

	guard guard.ConstructorGuard
}

// NewRemoveInterestCommand creates a command to withdraw an interest
// registration.
func NewRemoveInterestCommand(
	flavorID, customerID kernel.UUID,
	accessCode string,
) (RemoveInterestCommand, error) {
	cmd := RemoveInterestCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFlavorID(flavorID),
		cmd.setCustomerID(customerID),
		cmd.setAccessCode(accessCode),
	); err != nil {
		return RemoveInterestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveInterestCommand) Validate() error {
	return c.guard.Validate(ErrRemoveInterestCommandIsNotConstructed)
}

// FlavorID returns the flavor the registration belongs to.
func (c RemoveInterestCommand) FlavorID() kernel.UUID {
	return c.flavorID
}

// CustomerID returns the withdrawing customer.
func (c RemoveInterestCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// AccessCode returns the customer's presented access code.
func (c RemoveInterestCommand) AccessCode() string {
	return c.accessCode
}

func (c *RemoveInterestCommand) setFlavorID(flavorID kernel.UUID) error {
	if err := flavorID.Validate(); err != nil {
		return err
	}

	c.flavorID = flavorID
	return nil
}

func (c *RemoveInterestCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customer id is invalid", err)
	}

	c.customerID = customerID
	return nil
}

func (c *RemoveInterestCommand) setAccessCode(accessCode string) error {
	if accessCode == "" {
		return errs.NewValueIsRequiredError("access code")
	}

	c.accessCode = accessCode
	return nil
}
