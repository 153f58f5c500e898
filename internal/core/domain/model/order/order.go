package order

import (
	"errors"
	"fmt"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order is the aggregate root for a customer's pizza order. It owns the
// lifecycle state machine and keeps the stored status field and the legal
// operations in lockstep on every mutation.
//
// Order follows these invariants:
//   - Statuses advance only along Received -> InPreparation -> Ready ->
//     InTransit -> Delivered; cancellation is a deletion, not a transition,
//     and is only allowed while Received or In Preparation
//   - The courier reference is bound only during the Ready -> InTransit
//     transition, never before
//   - The total is computed once at creation and mutated only by the payment
//     policy when the customer settles the order
//   - Payment can be confirmed at most once
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the owning customer
	customerID kernel.UUID

	// establishmentID references the owning establishment
	establishmentID kernel.UUID

	// courierID is the delivering courier (nil until dispatched)
	courierID *kernel.UUID

	// pizzas is the ordered list of line items
	pizzas []Pizza

	// total is the order price; discounted once at payment settlement
	total float64

	// paid reports whether payment has been settled
	paid bool

	// deliveryAddress is the destination street address
	deliveryAddress string

	// createdAt orders the ready-order backlog (oldest first)
	createdAt time.Time

	// status is the current state in the order lifecycle
	status Status

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Received status with payment unsettled.
// This is the only way to create a fresh order, ensuring all invariants hold
// from the start.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - customerID, establishmentID: owning entity references
//   - deliveryAddress: destination (must be non-empty; callers default it to
//     the customer's address)
//   - pizzas: at least one validated line item
//   - total: price computed from the establishment's menu
//   - createdAt: placement time, used to order the assignment backlog
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	establishmentID kernel.UUID,
	deliveryAddress string,
	pizzas []Pizza,
	total float64,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status: Received,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setEstablishmentID(establishmentID),
		o.setDeliveryAddress(deliveryAddress),
		o.setPizzas(pizzas),
		o.setTotal(total),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage,
// re-deriving the legal operations from the stored status so the two can
// never disagree. It additionally checks courier/status consistency.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	establishmentID kernel.UUID,
	courierID *kernel.UUID,
	deliveryAddress string,
	pizzas []Pizza,
	total float64,
	paid bool,
	createdAt time.Time,
	status Status,
) (*Order, error) {
	o := &Order{
		paid:  paid,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setEstablishmentID(establishmentID),
		o.setDeliveryAddress(deliveryAddress),
		o.setPizzas(pizzas),
		o.setTotal(total),
		o.setCreatedAt(createdAt),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if err := status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return nil, err
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		cID := *courierID
		o.courierID = &cID
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the owning customer reference.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// EstablishmentID returns the owning establishment reference.
func (o *Order) EstablishmentID() kernel.UUID {
	return o.establishmentID
}

// Courier returns the delivering courier's ID, or nil before dispatch.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// Pizzas returns a copy of the order's line items.
func (o *Order) Pizzas() []Pizza {
	return append([]Pizza(nil), o.pizzas...)
}

// Total returns the current order price.
func (o *Order) Total() float64 {
	return o.total
}

// IsPaid reports whether payment has been settled.
func (o *Order) IsPaid() bool {
	return o.paid
}

// DeliveryAddress returns the destination address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// CreatedAt returns the placement time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// ConfirmPayment settles the order with the given method and immediately
// starts preparation. Applying the discount, marking the order paid, and the
// Received -> InPreparation transition form one user-visible operation.
//
// Returns an invalid-operation error if payment was already settled; in that
// case nothing is mutated.
func (o *Order) ConfirmPayment(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	if o.paid {
		return errs.NewInvalidOperationError("payment cannot be changed")
	}

	newStatus, err := o.status.Prepare()
	if err != nil {
		return err
	}

	o.total = method.ApplyDiscount(o.total)
	o.paid = true
	o.status = newStatus
	return nil
}

// FinishPreparation marks the order Ready for courier assignment. Callers
// attempt assignment immediately and synchronously after this transition.
func (o *Order) FinishPreparation() error {
	newStatus, err := o.status.FinishPreparation()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Dispatch binds the order to a courier and moves it InTransit. This is the
// only place the courier reference is ever set.
func (o *Order) Dispatch(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Dispatch()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	return nil
}

// ConfirmDelivery marks the order Delivered, the terminal state.
func (o *Order) ConfirmDelivery() error {
	newStatus, err := o.status.ConfirmDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ValidateCancel checks whether the order may still be cancelled. Once
// preparation finishes the order is committed to delivery.
func (o *Order) ValidateCancel() error {
	return o.status.ValidateCancel()
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the owning customer reference.
func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customer id is invalid", err)
	}
	o.customerID = id
	return nil
}

// setEstablishmentID validates and sets the owning establishment reference.
func (o *Order) setEstablishmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("establishment id is invalid", err)
	}
	o.establishmentID = id
	return nil
}

// setDeliveryAddress validates and sets the destination address.
func (o *Order) setDeliveryAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	o.deliveryAddress = address
	return nil
}

// setPizzas validates and sets the line items. At least one is required.
func (o *Order) setPizzas(pizzas []Pizza) error {
	if len(pizzas) == 0 {
		return errs.NewValueIsRequiredError("pizzas")
	}
	for _, p := range pizzas {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	o.pizzas = append([]Pizza(nil), pizzas...)
	return nil
}

// setTotal validates and sets the order price.
func (o *Order) setTotal(total float64) error {
	if total <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("total is invalid", fmt.Errorf("%f is not greater than 0", total))
	}
	o.total = total
	return nil
}

// setCreatedAt validates and sets the placement time.
func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("creation time")
	}
	o.createdAt = createdAt
	return nil
}

// setStatus validates and sets the stored status when restoring.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
