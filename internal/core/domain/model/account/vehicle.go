package account

import (
	"errors"
	"fmt"
	"strings"

	"pizzeria/internal/pkg/errs"
)

// VehicleKind represents the type of a courier's vehicle.
type VehicleKind int

const (
	// VehicleKindUnknown represents an invalid or undefined vehicle kind.
	VehicleKindUnknown VehicleKind = iota

	// Car vehicles.
	Car

	// Motorcycle vehicles.
	Motorcycle
)

// getVehicleKindStrings returns a map of VehicleKind values to names.
func getVehicleKindStrings() map[VehicleKind]string {
	return map[VehicleKind]string{
		VehicleKindUnknown: "unknown",
		Car:                "car",
		Motorcycle:         "motorcycle",
	}
}

// VehicleKindFromString parses a vehicle kind name case-insensitively.
func VehicleKindFromString(s string) (VehicleKind, error) {
	for kind, name := range getVehicleKindStrings() {
		if kind != VehicleKindUnknown && strings.EqualFold(name, s) {
			return kind, nil
		}
	}
	return VehicleKindUnknown, errs.NewValueIsInvalidErrorWithCause(
		"vehicle kind is invalid",
		fmt.Errorf("%q is not a valid vehicle kind", s),
	)
}

// Validate checks if the VehicleKind is Car or Motorcycle.
func (k VehicleKind) Validate() error {
	if k != Car && k != Motorcycle {
		return errs.NewValueIsInvalidErrorWithCause(
			"vehicle kind is invalid",
			fmt.Errorf("%d is not a valid vehicle kind", k),
		)
	}
	return nil
}

// String returns the lowercase name of the vehicle kind.
func (k VehicleKind) String() string {
	if str, ok := getVehicleKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}

// Vehicle is a value object describing the courier's delivery vehicle. Its
// description is carried in the order-dispatched notification so the
// customer can recognize the courier on arrival.
type Vehicle struct {
	plate string
	kind  VehicleKind
	color string
}

// NewVehicle creates a validated Vehicle.
func NewVehicle(plate string, kind VehicleKind, color string) (Vehicle, error) {
	if plate == "" {
		return Vehicle{}, errs.NewValueIsRequiredError("vehicle plate")
	}
	if err := kind.Validate(); err != nil {
		return Vehicle{}, err
	}
	if color == "" {
		return Vehicle{}, errs.NewValueIsRequiredError("vehicle color")
	}

	return Vehicle{plate: plate, kind: kind, color: color}, nil
}

// Plate returns the vehicle's license plate.
func (v Vehicle) Plate() string {
	return v.plate
}

// Kind returns the vehicle's type.
func (v Vehicle) Kind() VehicleKind {
	return v.kind
}

// Color returns the vehicle's color.
func (v Vehicle) Color() string {
	return v.color
}

// Description renders the vehicle for customer-facing notifications,
// e.g. "black motorcycle, plate ABC-1234".
func (v Vehicle) Description() string {
	return fmt.Sprintf("%s %s, plate %s", v.color, v.kind, v.plate)
}

// Validate ensures the Vehicle was created through NewVehicle.
func (v Vehicle) Validate() error {
	if v.plate == "" {
		return errors.New("Vehicle must be created via NewVehicle constructor")
	}
	return nil
}
