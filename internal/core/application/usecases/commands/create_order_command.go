package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a customer's request to place a new order
// with an establishment. The delivery address is optional; an empty address
// means the customer's registered address.
//
// Example:
//
//	pizza, _ := order.NewPizza(order.Large, []kernel.UUID{flavorID})
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewUUID(), customerID, establishmentID, "123456", "", []order.Pizza{pizza})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	establishmentID kernel.UUID
	accessCode      string
	deliveryAddress string
	pizzas          []order.Pizza

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identifiers, the access code, and every pizza line item.
func NewCreateOrderCommand(
	orderID, customerID, establishmentID kernel.UUID,
	accessCode, deliveryAddress string,
	pizzas []order.Pizza,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		deliveryAddress: deliveryAddress,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setEstablishmentID(establishmentID),
		cmd.setAccessCode(accessCode),
		cmd.setPizzas(pizzas),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// EstablishmentID returns the establishment receiving the order.
func (c CreateOrderCommand) EstablishmentID() kernel.UUID {
	return c.establishmentID
}

// AccessCode returns the customer's presented access code.
func (c CreateOrderCommand) AccessCode() string {
	return c.accessCode
}

// DeliveryAddress returns the requested delivery address, possibly empty.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Pizzas returns the order line items.
func (c CreateOrderCommand) Pizzas() []order.Pizza {
	return c.pizzas
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customer id is invalid", err)
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setEstablishmentID(establishmentID kernel.UUID) error {
	if err := establishmentID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("establishment id is invalid", err)
	}

	c.establishmentID = establishmentID
	return nil
}

func (c *CreateOrderCommand) setAccessCode(accessCode string) error {
	if accessCode == "" {
		return errs.NewValueIsRequiredError("access code")
	}

	c.accessCode = accessCode
	return nil
}

func (c *CreateOrderCommand) setPizzas(pizzas []order.Pizza) error {
	if len(pizzas) == 0 {
		return errs.NewValueIsRequiredError("pizzas")
	}
	for _, pizza := range pizzas {
		if err := pizza.Validate(); err != nil {
			return err
		}
	}

	c.pizzas = pizzas
	return nil
}
