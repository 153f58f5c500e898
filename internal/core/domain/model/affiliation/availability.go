package affiliation

import (
	"fmt"
	"strings"

	"pizzeria/internal/pkg/errs"
)

// Availability represents a courier's working state within an approved
// affiliation. Only Active couriers can be claimed for delivery; Delivering
// is entered by the assignment engine, never set by the courier directly.
type Availability int

const (
	// AvailabilityUnknown represents an invalid or undefined availability.
	AvailabilityUnknown Availability = iota

	// Resting means the courier is off duty for this establishment.
	Resting

	// Active means the courier is waiting for a delivery.
	Active

	// Delivering means the courier is currently carrying an order.
	Delivering
)

// getAvailabilityStrings returns a map of Availability values to names.
func getAvailabilityStrings() map[Availability]string {
	return map[Availability]string{
		AvailabilityUnknown: "Unknown",
		Resting:             "Resting",
		Active:              "Active",
		Delivering:          "Delivering",
	}
}

// AvailabilityFromString parses an availability name case-insensitively.
func AvailabilityFromString(s string) (Availability, error) {
	for availability, name := range getAvailabilityStrings() {
		if availability != AvailabilityUnknown && strings.EqualFold(name, s) {
			return availability, nil
		}
	}
	return AvailabilityUnknown, errs.NewValueIsInvalidErrorWithCause(
		"availability is invalid",
		fmt.Errorf("%q is not a valid availability", s),
	)
}

// Validate checks if the Availability is Resting, Active or Delivering.
func (a Availability) Validate() error {
	if a != Resting && a != Active && a != Delivering {
		return errs.NewValueIsInvalidErrorWithCause(
			"availability is invalid",
			fmt.Errorf("%d is not a valid availability", a),
		)
	}
	return nil
}

// String returns the human-readable name of the availability.
func (a Availability) String() string {
	if str, ok := getAvailabilityStrings()[a]; ok {
		return str
	}
	return "Unknown"
}
