package order

import (
	"fmt"
	"strings"

	"pizzeria/internal/pkg/errs"
)

// PaymentMethod selects the discount policy applied when a customer settles
// an order. The policy is a static lookup table, constructed once and treated
// as read-only configuration.
type PaymentMethod int

const (
	// PaymentMethodUnknown represents an invalid or undefined method.
	PaymentMethodUnknown PaymentMethod = iota

	// Credit card payment. No discount.
	Credit

	// Debit card payment. 2.5% discount.
	Debit

	// Pix instant transfer. 5% discount.
	Pix
)

// getPaymentMethodStrings returns a map of PaymentMethod values to names.
func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodUnknown: "Unknown",
		Credit:               "Credit",
		Debit:                "Debit",
		Pix:                  "Pix",
	}
}

// getDiscountRates returns the payment policy table: method -> discount
// fraction subtracted from the order total.
func getDiscountRates() map[PaymentMethod]float64 {
	//nolint:exhaustive // PaymentMethodUnknown carries no rate
	return map[PaymentMethod]float64{
		Credit: 0,
		Debit:  0.025,
		Pix:    0.05,
	}
}

// PaymentMethodFromString parses a method name case-insensitively, as
// received from the transport layer.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, name := range getPaymentMethodStrings() {
		if method != PaymentMethodUnknown && strings.EqualFold(name, s) {
			return method, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment method is invalid",
		fmt.Errorf("%q is not a valid payment method", s),
	)
}

// Validate checks if the PaymentMethod is one of the supported methods.
func (m PaymentMethod) Validate() error {
	if _, ok := getDiscountRates()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment method is invalid",
			fmt.Errorf("%d is not a valid payment method", m),
		)
	}
	return nil
}

// String returns the human-readable name of the payment method.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// ApplyDiscount maps the current total to the discounted total for this
// method. Pure function over the policy table; no state is touched.
func (m PaymentMethod) ApplyDiscount(total float64) float64 {
	return total - total*getDiscountRates()[m]
}
