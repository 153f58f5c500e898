package order

import (
	"errors"
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

// Size represents the size of a pizza on an order line item.
type Size int

const (
	// SizeUnknown represents an invalid or undefined size.
	SizeUnknown Size = iota

	// Medium pizzas carry a single flavor.
	Medium

	// Large pizzas carry one flavor or two half-and-half flavors.
	Large
)

// getSizeStrings returns a map of Size values to their display names.
func getSizeStrings() map[Size]string {
	return map[Size]string{
		SizeUnknown: "Unknown",
		Medium:      "Medium",
		Large:       "Large",
	}
}

// SizeFromString parses a size name case-insensitively.
func SizeFromString(s string) (Size, error) {
	switch s {
	case "Medium", "medium":
		return Medium, nil
	case "Large", "large":
		return Large, nil
	default:
		return SizeUnknown, errs.NewValueIsInvalidErrorWithCause(
			"size is invalid",
			fmt.Errorf("%q is not a valid pizza size", s),
		)
	}
}

// Validate checks if the Size value is Medium or Large.
func (s Size) Validate() error {
	if s != Medium && s != Large {
		return errs.NewValueIsInvalidErrorWithCause("size is invalid", fmt.Errorf("%d is not a valid size", s))
	}
	return nil
}

// String returns the human-readable name of the size.
func (s Size) String() string {
	if str, ok := getSizeStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Pizza is a value object for one order line item: a size and one or two
// flavor references. Two flavors form a half-and-half pizza, which only a
// large size can carry.
type Pizza struct {
	size      Size
	flavorIDs []kernel.UUID
}

// NewPizza creates a validated Pizza line item.
//
// Business rules:
//   - Size must be Medium or Large
//   - A pizza carries one or two flavors
//   - Two flavors are only allowed on a Large pizza
func NewPizza(size Size, flavorIDs []kernel.UUID) (Pizza, error) {
	if err := size.Validate(); err != nil {
		return Pizza{}, err
	}

	if len(flavorIDs) < 1 || len(flavorIDs) > 2 {
		return Pizza{}, errs.NewValueIsOutOfRangeError("flavor count", len(flavorIDs), 1, 2)
	}

	if len(flavorIDs) == 2 && size != Large {
		return Pizza{}, errs.NewValueIsInvalidErrorWithCause(
			"flavor count is invalid",
			errors.New("only a large pizza can have two flavors"),
		)
	}

	for _, id := range flavorIDs {
		if err := id.Validate(); err != nil {
			return Pizza{}, err
		}
	}

	return Pizza{
		size:      size,
		flavorIDs: append([]kernel.UUID(nil), flavorIDs...),
	}, nil
}

// Size returns the pizza size.
func (p Pizza) Size() Size {
	return p.size
}

// FlavorIDs returns a copy of the flavor references.
func (p Pizza) FlavorIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), p.flavorIDs...)
}

// Validate ensures the Pizza was created through NewPizza.
func (p Pizza) Validate() error {
	if len(p.flavorIDs) == 0 {
		return errs.NewValueIsRequiredError("pizza must be created via NewPizza constructor")
	}
	return nil
}
