package account

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created
// through its constructor.
var ErrCustomerIsNotConstructed = errors.New(
	"Customer must be created via NewCustomer constructor")

// Customer is a marketplace customer account. The address is the default
// delivery address for new orders.
type Customer struct {
	id         kernel.UUID
	name       string
	address    string
	accessCode string

	guard guard.ConstructorGuard
}

// NewCustomer creates a validated Customer account.
func NewCustomer(id kernel.UUID, name, address, accessCode string) (*Customer, error) {
	c := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setAddress(address),
		c.setAccessCode(accessCode),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Address returns the customer's default delivery address.
func (c *Customer) Address() string {
	return c.address
}

// AccessCode returns the customer's access code for persistence.
func (c *Customer) AccessCode() string {
	return c.accessCode
}

// CheckAccessCode authorizes an operation on behalf of this customer.
func (c *Customer) CheckAccessCode(code string) error {
	return checkAccessCode(c.accessCode, code)
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.name = name
	return nil
}

func (c *Customer) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("customer address")
	}
	c.address = address
	return nil
}

func (c *Customer) setAccessCode(code string) error {
	if err := validateAccessCode(code); err != nil {
		return err
	}
	c.accessCode = code
	return nil
}
