package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrFinishPreparationCommandIsNotConstructed = errors.New(
	"FinishPreparationCommand must be created via NewFinishPreparationCommand constructor",
)

// FinishPreparationCommand represents an establishment declaring an order
// ready for delivery. Readiness immediately triggers a courier assignment
// attempt.
type FinishPreparationCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	establishmentID kernel.UUID
	accessCode      string

	guard guard.ConstructorGuard
}

// NewFinishPreparationCommand creates a command to mark an order Ready.
func NewFinishPreparationCommand(
	orderID, establishmentID kernel.UUID,
	accessCode string,
) (FinishPreparationCommand, error) {
	cmd := FinishPreparationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setEstablishmentID(establishmentID),
		cmd.setAccessCode(accessCode),
	); err != nil {
		return FinishPreparationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FinishPreparationCommand) Validate() error {
	return c.guard.Validate(ErrFinishPreparationCommandIsNotConstructed)
}

// OrderID returns the order being marked Ready.
func (c FinishPreparationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// EstablishmentID returns the establishment finishing the preparation.
func (c FinishPreparationCommand) EstablishmentID() kernel.UUID {
	return c.establishmentID
}

// AccessCode returns the establishment's presented access code.
func (c FinishPreparationCommand) AccessCode() string {
	return c.accessCode
}

func (c *FinishPreparationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *FinishPreparationCommand) setEstablishmentID(establishmentID kernel.UUID) error {
	if err := establishmentID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("establishment id is invalid", err)
	}

	c.establishmentID = establishmentID
	return nil
}

func (c *FinishPreparationCommand) setAccessCode(accessCode string) error {
	if accessCode == "" {
		return errs.NewValueIsRequiredError("access code")
	}

	c.accessCode = accessCode
	return nil
}
