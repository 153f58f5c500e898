package affiliation

import (
	"fmt"
	"strings"

	"pizzeria/internal/pkg/errs"
)

// ApprovalStatus represents the establishment's decision on an affiliation
// request. A request starts Pending and is decided exactly once.
type ApprovalStatus int

const (
	// ApprovalUnknown represents an invalid or undefined approval status.
	ApprovalUnknown ApprovalStatus = iota

	// Pending means the establishment has not decided yet.
	Pending

	// Approved means the courier may deliver for the establishment.
	Approved

	// Rejected means the request was declined. Rejected affiliations do not
	// block a new request for the same pair.
	Rejected
)

// getApprovalStatusStrings returns a map of ApprovalStatus values to names.
func getApprovalStatusStrings() map[ApprovalStatus]string {
	return map[ApprovalStatus]string{
		ApprovalUnknown: "Unknown",
		Pending:         "Pending",
		Approved:        "Approved",
		Rejected:        "Rejected",
	}
}

// ApprovalStatusFromString parses an approval status name case-insensitively.
func ApprovalStatusFromString(s string) (ApprovalStatus, error) {
	for status, name := range getApprovalStatusStrings() {
		if status != ApprovalUnknown && strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return ApprovalUnknown, errs.NewValueIsInvalidErrorWithCause(
		"approval status is invalid",
		fmt.Errorf("%q is not a valid approval status", s),
	)
}

// Validate checks if the ApprovalStatus is Pending, Approved or Rejected.
func (s ApprovalStatus) Validate() error {
	if s != Pending && s != Approved && s != Rejected {
		return errs.NewValueIsInvalidErrorWithCause(
			"approval status is invalid",
			fmt.Errorf("%d is not a valid approval status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the approval status.
func (s ApprovalStatus) String() string {
	if str, ok := getApprovalStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
