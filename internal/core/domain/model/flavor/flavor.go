package flavor

import (
	"errors"
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// ErrFlavorIsNotConstructed is returned when a Flavor was not created
// through one of its constructors.
var ErrFlavorIsNotConstructed = errors.New(
	"Flavor must be created via NewFlavor or RestoreFlavor constructor")

// Flavor is a menu item of an establishment, carrying per-size prices and an
// availability flag. While a flavor is unavailable, customers may register
// interest; flipping it back to available drains the interest set so each
// registered customer is notified exactly once.
type Flavor struct {
	id              kernel.UUID
	establishmentID kernel.UUID
	name            string
	kind            Kind
	priceMedium     float64
	priceLarge      float64
	available       bool
	interested      map[kernel.UUID]struct{}

	guard guard.ConstructorGuard
}

// NewFlavor creates an available Flavor with an empty interest set.
func NewFlavor(
	id, establishmentID kernel.UUID,
	name string,
	kind Kind,
	priceMedium, priceLarge float64,
) (*Flavor, error) {
	f := &Flavor{
		available:  true,
		interested: make(map[kernel.UUID]struct{}),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		f.setID(id),
		f.setEstablishmentID(establishmentID),
		f.setName(name),
		f.setKind(kind),
		f.setPrices(priceMedium, priceLarge),
	); err != nil {
		return nil, err
	}

	return f, nil
}

// RestoreFlavor reconstructs a Flavor from persistent storage, including its
// registered interest set.
func RestoreFlavor(
	id, establishmentID kernel.UUID,
	name string,
	kind Kind,
	priceMedium, priceLarge float64,
	available bool,
	interested []kernel.UUID,
) (*Flavor, error) {
	f := &Flavor{
		available:  available,
		interested: make(map[kernel.UUID]struct{}, len(interested)),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		f.setID(id),
		f.setEstablishmentID(establishmentID),
		f.setName(name),
		f.setKind(kind),
		f.setPrices(priceMedium, priceLarge),
	); err != nil {
		return nil, err
	}

	for _, customerID := range interested {
		if err := customerID.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("interested customer id is invalid", err)
		}
		f.interested[customerID] = struct{}{}
	}

	return f, nil
}

// Validate ensures the Flavor instance was properly constructed.
func (f *Flavor) Validate() error {
	if f == nil {
		return ErrFlavorIsNotConstructed
	}
	return f.guard.Validate(ErrFlavorIsNotConstructed)
}

// IsEqual compares two flavors by their unique identifiers.
func (f *Flavor) IsEqual(other *Flavor) bool {
	return other != nil && f.id.IsEqual(other.id)
}

// ID returns the flavor's unique identifier.
func (f *Flavor) ID() kernel.UUID {
	return f.id
}

// EstablishmentID returns the owning establishment.
func (f *Flavor) EstablishmentID() kernel.UUID {
	return f.establishmentID
}

// Name returns the flavor's menu name.
func (f *Flavor) Name() string {
	return f.name
}

// Kind returns the flavor's menu classification.
func (f *Flavor) Kind() Kind {
	return f.kind
}

// IsAvailable reports whether the flavor can currently be ordered.
func (f *Flavor) IsAvailable() bool {
	return f.available
}

// Interested returns the customers currently registered for an availability
// notification.
func (f *Flavor) Interested() []kernel.UUID {
	customers := make([]kernel.UUID, 0, len(f.interested))
	for customerID := range f.interested {
		customers = append(customers, customerID)
	}
	return customers
}

// PriceMedium returns the price of a medium pizza of this flavor.
func (f *Flavor) PriceMedium() float64 {
	return f.priceMedium
}

// PriceLarge returns the price of a large pizza of this flavor.
func (f *Flavor) PriceLarge() float64 {
	return f.priceLarge
}

// PriceFor returns the flavor's price for the given pizza size.
func (f *Flavor) PriceFor(size order.Size) (float64, error) {
	switch size {
	case order.Medium:
		return f.priceMedium, nil
	case order.Large:
		return f.priceLarge, nil
	default:
		return 0, size.Validate()
	}
}

// ExpressInterest registers a customer for a notification when the flavor
// becomes available again. Registering while the flavor is available is a
// conflict; registering twice is a no-op.
func (f *Flavor) ExpressInterest(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	if f.available {
		return errs.NewConflictError(fmt.Sprintf("flavor %s is available", f.name))
	}

	f.interested[customerID] = struct{}{}
	return nil
}

// RemoveInterest deregisters a customer. Removing an absent registration is
// a no-op.
func (f *Flavor) RemoveInterest(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	delete(f.interested, customerID)
	return nil
}

// UpdateAvailability flips the availability flag. Turning the flavor
// available drains the interest set and returns the customers to notify;
// each registered customer appears exactly once and the set is left empty.
func (f *Flavor) UpdateAvailability(available bool) []kernel.UUID {
	f.available = available
	if !available || len(f.interested) == 0 {
		return nil
	}

	notified := f.Interested()
	f.interested = make(map[kernel.UUID]struct{})
	return notified
}

func (f *Flavor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	f.id = id
	return nil
}

func (f *Flavor) setEstablishmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("establishment id is invalid", err)
	}
	f.establishmentID = id
	return nil
}

func (f *Flavor) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("flavor name")
	}
	f.name = name
	return nil
}

func (f *Flavor) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	f.kind = kind
	return nil
}

func (f *Flavor) setPrices(priceMedium, priceLarge float64) error {
	if priceMedium <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"medium price is invalid", fmt.Errorf("%f is not greater than 0", priceMedium))
	}
	if priceLarge <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"large price is invalid", fmt.Errorf("%f is not greater than 0", priceLarge))
	}
	f.priceMedium = priceMedium
	f.priceLarge = priceLarge
	return nil
}
