package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrWithdrawOrderCommandIsNotConstructed = errors.New(
	"WithdrawOrderCommand must be created via NewWithdrawOrderCommand constructor",
)

// WithdrawOrderCommand represents an establishment withdrawing one of its own
// orders, regardless of the order's progress.
type WithdrawOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	establishmentID kernel.UUID
	accessCode      string

	guard guard.ConstructorGuard
}

// NewWithdrawOrderCommand creates a command to withdraw an order.
func NewWithdrawOrderCommand(
	orderID, establishmentID kernel.UUID,
	accessCode string,
) (WithdrawOrderCommand, error) {
	cmd := WithdrawOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setEstablishmentID(establishmentID),
		cmd.setAccessCode(accessCode),
	); err != nil {
		return WithdrawOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c WithdrawOrderCommand) Validate() error {
	return c.guard.Validate(ErrWithdrawOrderCommandIsNotConstructed)
}

// OrderID returns the order being withdrawn.
func (c WithdrawOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// EstablishmentID returns the withdrawing establishment.
func (c WithdrawOrderCommand) EstablishmentID() kernel.UUID {
	return c.establishmentID
}

// AccessCode returns the establishment's presented access code.
func (c WithdrawOrderCommand) AccessCode() string {
	return c.accessCode
}

func (c *WithdrawOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *WithdrawOrderCommand) setEstablishmentID(establishmentID kernel.UUID) error {
	if err := establishmentID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("establishment id is invalid", err)
	}

	c.establishmentID = establishmentID
	return nil
}

func (c *WithdrawOrderCommand) setAccessCode(accessCode string) error {
	if accessCode == "" {
		return errs.NewValueIsRequiredError("access code")
	}

	c.accessCode = accessCode
	return nil
}
