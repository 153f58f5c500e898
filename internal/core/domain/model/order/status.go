package order

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with a fixed forward sequence; exactly one operation is legal in
// each state.
//
// State transitions:
//
//	Received ──> InPreparation ──> Ready ──> InTransit ──> Delivered
//	 (prepare)  (finishPreparation)  (dispatch)  (confirmDelivery)
//
// Received and InPreparation orders may additionally be cancelled, which
// deletes the order rather than advancing it. Delivered is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Received is the initial status: the order was placed but payment has
	// not been settled yet.
	Received

	// InPreparation indicates payment settled and the establishment is
	// preparing the order.
	InPreparation

	// Ready indicates preparation is finished and the order is eligible for
	// courier assignment.
	Ready

	// InTransit indicates a courier has been bound and is delivering.
	InTransit

	// Delivered indicates the customer confirmed receipt. Terminal.
	Delivered
)

// getStatusStrings returns a map of Status values to their display names.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "Unknown",
		Received:      "Received",
		InPreparation: "In Preparation",
		Ready:         "Ready",
		InTransit:     "In Transit",
		Delivered:     "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Received:      "Received",
		InPreparation: "In Preparation",
		Ready:         "Ready",
		InTransit:     "In Transit",
		Delivered:     "Delivered",
	}
}

// Validate checks if the Status value is one of the five lifecycle states.
// Used when reconstructing orders from storage.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Prepare transitions the status to InPreparation.
//
// Valid transitions:
//   - Received -> InPreparation (payment settled, preparation starts)
//
// Any other state fails with an invalid-operation error naming the current
// state.
func (s Status) Prepare() (Status, error) {
	switch s {
	case Received:
		return InPreparation, nil
	case InPreparation:
		return 0, errs.NewInvalidOperationError("order already In Preparation")
	case Ready:
		return 0, errs.NewInvalidOperationError("order already Ready")
	case InTransit:
		return 0, errs.NewInvalidOperationError("order already In Transit")
	case Delivered:
		return 0, errs.NewInvalidOperationError("order already Delivered")
	default:
		return 0, s.Validate()
	}
}

// FinishPreparation transitions the status to Ready.
//
// Valid transitions:
//   - InPreparation -> Ready (establishment finished preparing)
func (s Status) FinishPreparation() (Status, error) {
	switch s {
	case InPreparation:
		return Ready, nil
	case Received:
		return 0, errs.NewInvalidOperationError("order Received has not been paid yet")
	case Ready:
		return 0, errs.NewInvalidOperationError("order already Ready")
	case InTransit:
		return 0, errs.NewInvalidOperationError("order already In Transit")
	case Delivered:
		return 0, errs.NewInvalidOperationError("order already Delivered")
	default:
		return 0, s.Validate()
	}
}

// Dispatch transitions the status to InTransit. Only the assignment engine
// performs this transition, as part of binding a courier.
//
// Valid transitions:
//   - Ready -> InTransit (courier claimed, order handed over)
func (s Status) Dispatch() (Status, error) {
	switch s {
	case Ready:
		return InTransit, nil
	case Received:
		return 0, errs.NewInvalidOperationError("order Received has not been paid yet")
	case InPreparation:
		return 0, errs.NewInvalidOperationError("order still In Preparation")
	case InTransit:
		return 0, errs.NewInvalidOperationError("order already In Transit")
	case Delivered:
		return 0, errs.NewInvalidOperationError("order already Delivered")
	default:
		return 0, s.Validate()
	}
}

// ConfirmDelivery transitions the status to Delivered, the terminal state.
//
// Valid transitions:
//   - InTransit -> Delivered (customer confirmed receipt)
func (s Status) ConfirmDelivery() (Status, error) {
	switch s {
	case InTransit:
		return Delivered, nil
	case Received:
		return 0, errs.NewInvalidOperationError("order Received has not been paid yet")
	case InPreparation:
		return 0, errs.NewInvalidOperationError("order still In Preparation")
	case Ready:
		return 0, errs.NewInvalidOperationError("order Ready has not been assigned to a courier yet")
	case Delivered:
		return 0, errs.NewInvalidOperationError("order already Delivered")
	default:
		return 0, s.Validate()
	}
}

// ValidateCancel checks whether an order in this status may still be
// cancelled. Cancellation is allowed only before preparation finishes.
func (s Status) ValidateCancel() error {
	if s != Received && s != InPreparation {
		return errs.NewInvalidOperationError("order can no longer be cancelled")
	}
	return nil
}

// ValidateCanHaveCourier validates the consistency between order status and
// courier binding: a courier reference is set only during the Ready ->
// InTransit transition, never before.
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && s != InTransit && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()),
		)
	}

	if !courier && (s == InTransit || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()),
		)
	}

	return nil
}
