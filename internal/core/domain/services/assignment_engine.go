package services

import (
	"time"

	"pizzeria/internal/core/domain/model/affiliation"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
)

// AssignmentEngine is a domain service coordinating the handover of a Ready
// order to a courier and the release of the courier after delivery. Candidate
// selection (oldest last-delivery first) lives in the repository query; the
// engine applies the state changes on both aggregates so they can never
// diverge.
//
// Business rules:
//   - Only an Active courier of the order's establishment can be claimed
//   - Claiming moves the courier to Delivering and the order to InTransit,
//     binding the courier id to the order
//   - Releasing moves the order to Delivered, stamps the courier's
//     last-delivery time, and returns the courier to Active
//
// Example usage:
//
//	engine := services.NewAssignmentEngine()
//	if err := engine.Claim(readyOrder, activeAffiliation); err != nil {
//	    // courier not claimable or order not Ready
//	}
type AssignmentEngine struct{}

// NewAssignmentEngine creates a new AssignmentEngine instance.
func NewAssignmentEngine() AssignmentEngine {
	return AssignmentEngine{}
}

// Claim hands the order to the affiliated courier: the courier becomes
// Delivering and the order moves InTransit with the courier id bound.
// Both aggregates must belong to the same establishment.
func (e AssignmentEngine) Claim(o *order.Order, a *affiliation.Affiliation) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := a.Validate(); err != nil {
		return err
	}

	if !o.EstablishmentID().IsEqual(a.EstablishmentID()) {
		return errs.NewInvalidOperationError("courier is not affiliated with the order's establishment")
	}

	if err := a.StartDelivering(); err != nil {
		return err
	}

	return o.Dispatch(a.CourierID())
}

// Release completes the delivery: the order becomes Delivered and the
// courier rejoins the establishment's queue with the delivery time stamped.
// The affiliation must belong to the courier the order was dispatched to.
func (e AssignmentEngine) Release(o *order.Order, a *affiliation.Affiliation, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := a.Validate(); err != nil {
		return err
	}

	if o.Courier() == nil || !o.Courier().IsEqual(a.CourierID()) {
		return errs.NewInvalidOperationError("order is not assigned to this courier")
	}

	if err := o.ConfirmDelivery(); err != nil {
		return err
	}

	return a.RecordDelivery(now)
}
