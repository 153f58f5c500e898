package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a customer cancelling an order that has not
// left preparation yet.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	accessCode string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
func NewCancelOrderCommand(
	orderID, customerID kernel.UUID,
	accessCode string,
) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setAccessCode(accessCode),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the order being cancelled.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the cancelling customer.
func (c CancelOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// AccessCode returns the customer's presented access code.
func (c CancelOrderCommand) AccessCode() string {
	return c.accessCode
}

func (c *CancelOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customer id is invalid", err)
	}

	c.customerID = customerID
	return nil
}

func (c *CancelOrderCommand) setAccessCode(accessCode string) error {
	if accessCode == "" {
		return errs.NewValueIsRequiredError("access code")
	}

	c.accessCode = accessCode
	return nil
}
