package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand represents a customer confirming receipt of an
// order in transit.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	accessCode string

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a command to confirm an order delivery.
func NewConfirmDeliveryCommand(
	orderID, customerID kernel.UUID,
	accessCode string,
) (ConfirmDeliveryCommand, error) {
	cmd := ConfirmDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setAccessCode(accessCode),
	); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// OrderID returns the delivered order.
func (c ConfirmDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the confirming customer.
func (c ConfirmDeliveryCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// AccessCode returns the customer's presented access code.
func (c ConfirmDeliveryCommand) AccessCode() string {
	return c.accessCode
}

func (c *ConfirmDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmDeliveryCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customer id is invalid", err)
	}

	c.customerID = customerID
	return nil
}

func (c *ConfirmDeliveryCommand) setAccessCode(accessCode string) error {
	if accessCode == "" {
		return errs.NewValueIsRequiredError("access code")
	}

	c.accessCode = accessCode
	return nil
}
