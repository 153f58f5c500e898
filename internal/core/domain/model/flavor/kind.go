package flavor

import (
	"fmt"
	"strings"

	"pizzeria/internal/pkg/errs"
)

// Kind classifies a flavor on the establishment's menu.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown Kind = iota

	// Savory flavors.
	Savory

	// Sweet flavors.
	Sweet
)

// getKindStrings returns a map of Kind values to their display names.
func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown: "Unknown",
		Savory:      "Savory",
		Sweet:       "Sweet",
	}
}

// KindFromString parses a kind name case-insensitively.
func KindFromString(s string) (Kind, error) {
	for kind, name := range getKindStrings() {
		if kind != KindUnknown && strings.EqualFold(name, s) {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause(
		"flavor kind is invalid",
		fmt.Errorf("%q is not a valid flavor kind", s),
	)
}

// Validate checks if the Kind is Savory or Sweet.
func (k Kind) Validate() error {
	if k != Savory && k != Sweet {
		return errs.NewValueIsInvalidErrorWithCause(
			"flavor kind is invalid",
			fmt.Errorf("%d is not a valid flavor kind", k),
		)
	}
	return nil
}

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}
