package affiliation

import (
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// ErrAffiliationIsNotConstructed is returned when an Affiliation was not
// created through one of its constructors.
var ErrAffiliationIsNotConstructed = errors.New(
	"Affiliation must be created via NewAffiliation or RestoreAffiliation constructor")

// Affiliation is the aggregate binding a courier to an establishment. It
// carries the establishment's approval decision, the courier's working state
// for that establishment, and the time of the courier's last completed
// delivery, which drives the fairness ordering of the assignment engine.
type Affiliation struct {
	id              kernel.UUID
	courierID       kernel.UUID
	establishmentID kernel.UUID
	approval        ApprovalStatus
	availability    Availability
	lastDelivery    *time.Time

	guard guard.ConstructorGuard
}

// NewAffiliation creates an affiliation request: Pending approval, courier
// Resting, no delivery recorded yet.
func NewAffiliation(id, courierID, establishmentID kernel.UUID) (*Affiliation, error) {
	a := &Affiliation{
		approval:     Pending,
		availability: Resting,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setCourierID(courierID),
		a.setEstablishmentID(establishmentID),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAffiliation reconstructs an Affiliation from persistent storage.
func RestoreAffiliation(
	id, courierID, establishmentID kernel.UUID,
	approval ApprovalStatus,
	availability Availability,
	lastDelivery *time.Time,
) (*Affiliation, error) {
	a := &Affiliation{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setCourierID(courierID),
		a.setEstablishmentID(establishmentID),
		a.setApproval(approval),
		a.setAvailability(availability),
	); err != nil {
		return nil, err
	}

	if lastDelivery != nil {
		t := *lastDelivery
		a.lastDelivery = &t
	}

	return a, nil
}

// Validate ensures the Affiliation instance was properly constructed.
func (a *Affiliation) Validate() error {
	if a == nil {
		return ErrAffiliationIsNotConstructed
	}
	return a.guard.Validate(ErrAffiliationIsNotConstructed)
}

// IsEqual compares two affiliations by their unique identifiers.
func (a *Affiliation) IsEqual(other *Affiliation) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the affiliation's unique identifier.
func (a *Affiliation) ID() kernel.UUID {
	return a.id
}

// CourierID returns the courier side of the pair.
func (a *Affiliation) CourierID() kernel.UUID {
	return a.courierID
}

// EstablishmentID returns the establishment side of the pair.
func (a *Affiliation) EstablishmentID() kernel.UUID {
	return a.establishmentID
}

// Approval returns the establishment's decision status.
func (a *Affiliation) Approval() ApprovalStatus {
	return a.approval
}

// Availability returns the courier's working state.
func (a *Affiliation) Availability() Availability {
	return a.availability
}

// LastDelivery returns the time of the last completed delivery, or nil if
// the courier never delivered for this establishment.
func (a *Affiliation) LastDelivery() *time.Time {
	if a.lastDelivery == nil {
		return nil
	}
	t := *a.lastDelivery
	return &t
}

// Blocks reports whether this affiliation prevents a new request for the
// same courier/establishment pair. Rejected requests never block.
func (a *Affiliation) Blocks() bool {
	return a.approval != Rejected
}

// UpdateApproval records the establishment's decision. The decision can only
// be made while the request is Pending and must itself be Approved or
// Rejected. Approval resets the courier's availability to Resting.
func (a *Affiliation) UpdateApproval(decision ApprovalStatus) error {
	if err := decision.Validate(); err != nil {
		return err
	}
	if decision == Pending {
		return errs.NewInvalidOperationError("Pending is not a decision")
	}

	if a.approval != Pending {
		return errs.NewInvalidOperationError("status cannot be changed")
	}

	a.approval = decision
	if decision == Approved {
		a.availability = Resting
	}
	return nil
}

// UpdateAvailability flips the courier between Resting and Active. Only an
// approved courier can change availability, and Delivering is reserved for
// the assignment engine.
func (a *Affiliation) UpdateAvailability(availability Availability) error {
	if err := availability.Validate(); err != nil {
		return err
	}
	if availability == Delivering {
		return errs.NewInvalidOperationError("Delivering is set by order assignment only")
	}

	if a.approval != Approved {
		return errs.NewInvalidOperationError("availability attribute cannot be changed")
	}

	a.availability = availability
	return nil
}

// StartDelivering claims the courier for a delivery. Only an Active courier
// of an approved affiliation can be claimed.
func (a *Affiliation) StartDelivering() error {
	if a.approval != Approved || a.availability != Active {
		return errs.NewInvalidOperationError("courier is not Active")
	}

	a.availability = Delivering
	return nil
}

// RecordDelivery releases the courier after a completed delivery: the
// last-delivery time is stamped and the courier becomes Active again,
// rejoining the assignment queue behind couriers who delivered earlier.
func (a *Affiliation) RecordDelivery(now time.Time) error {
	if a.availability != Delivering {
		return errs.NewInvalidOperationError("courier is not Delivering")
	}
	if now.IsZero() {
		return errs.NewValueIsRequiredError("delivery time")
	}

	a.lastDelivery = &now
	a.availability = Active
	return nil
}

func (a *Affiliation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Affiliation) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("courier id is invalid", err)
	}
	a.courierID = id
	return nil
}

func (a *Affiliation) setEstablishmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("establishment id is invalid", err)
	}
	a.establishmentID = id
	return nil
}

func (a *Affiliation) setApproval(approval ApprovalStatus) error {
	if err := approval.Validate(); err != nil {
		return err
	}
	a.approval = approval
	return nil
}

func (a *Affiliation) setAvailability(availability Availability) error {
	if err := availability.Validate(); err != nil {
		return err
	}
	a.availability = availability
	return nil
}
