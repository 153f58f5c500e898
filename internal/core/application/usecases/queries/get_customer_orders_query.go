// Package queries contains the read side of the application: handlers that
// bypass the aggregates and read the database directly for listing and
// tracking screens.
package queries

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves all orders a customer has placed, for the
// order tracking screen. Results are grouped by lifecycle status so active
// orders surface before delivered ones.
type GetCustomerOrdersQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for a customer's order history.
func NewGetCustomerOrdersQuery(customerID kernel.UUID) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("customer id is invalid", err)
	}

	return GetCustomerOrdersQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer whose orders are being listed.
func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetCustomerOrdersQueryResponse represents one order on the tracking
// screen.
type GetCustomerOrdersQueryResponse struct {
	ID              kernel.UUID
	EstablishmentID kernel.UUID
	DeliveryAddress string
	Total           float64
	Paid            bool
	Status          string
}
