package account

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// accessCodeLength is the fixed length of every account access code.
const accessCodeLength = 6

// validateAccessCode checks the access code format: exactly six digits.
func validateAccessCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("access code")
	}
	if len(code) != accessCodeLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"access code is invalid",
			fmt.Errorf("access code must have %d digits", accessCodeLength),
		)
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return errs.NewValueIsInvalidErrorWithCause(
				"access code is invalid",
				fmt.Errorf("access code must contain only digits"),
			)
		}
	}
	return nil
}

// checkAccessCode compares a presented code against the stored one.
func checkAccessCode(stored, presented string) error {
	if stored != presented {
		return errs.NewUnauthorizedError("invalid access code")
	}
	return nil
}
