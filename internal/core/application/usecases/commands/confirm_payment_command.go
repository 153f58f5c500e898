package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrConfirmPaymentCommandIsNotConstructed = errors.New(
	"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
)

// ConfirmPaymentCommand represents a customer settling an order with one of
// the supported payment methods. The method selects the discount applied to
// the order total.
type ConfirmPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	accessCode string
	method     order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewConfirmPaymentCommand creates a command to settle an order.
func NewConfirmPaymentCommand(
	orderID, customerID kernel.UUID,
	accessCode string,
	method order.PaymentMethod,
) (ConfirmPaymentCommand, error) {
	cmd := ConfirmPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setAccessCode(accessCode),
		cmd.setMethod(method),
	); err != nil {
		return ConfirmPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

// OrderID returns the order being settled.
func (c ConfirmPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the paying customer.
func (c ConfirmPaymentCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// AccessCode returns the customer's presented access code.
func (c ConfirmPaymentCommand) AccessCode() string {
	return c.accessCode
}

// Method returns the chosen payment method.
func (c ConfirmPaymentCommand) Method() order.PaymentMethod {
	return c.method
}

func (c *ConfirmPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmPaymentCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customer id is invalid", err)
	}

	c.customerID = customerID
	return nil
}

func (c *ConfirmPaymentCommand) setAccessCode(accessCode string) error {
	if accessCode == "" {
		return errs.NewValueIsRequiredError("access code")
	}

	c.accessCode = accessCode
	return nil
}

func (c *ConfirmPaymentCommand) setMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}
