package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/affiliation"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var ErrUpdateAffiliationStatusCommandIsNotConstructed = errors.New(
	"UpdateAffiliationStatusCommand must be created via NewUpdateAffiliationStatusCommand constructor",
)

// UpdateAffiliationStatusCommand represents an establishment deciding a
// pending affiliation request.
type UpdateAffiliationStatusCommand struct { //nolint:recvcheck //using for validation
	affiliationID   kernel.UUID
	establishmentID kernel.UUID
	accessCode      string
	decision        affiliation.ApprovalStatus

	guard guard.ConstructorGuard
}

// NewUpdateAffiliationStatusCommand creates a command to decide an
// affiliation request. The decision must be Approved or Rejected.
func NewUpdateAffiliationStatusCommand(
	affiliationID, establishmentID kernel.UUID,
	accessCode string,
	decision affiliation.ApprovalStatus,
) (UpdateAffiliationStatusCommand, error) {
	cmd := UpdateAffiliationStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAffiliationID(affiliationID),
		cmd.setEstablishmentID(establishmentID),
		cmd.setAccessCode(accessCode),
		cmd.setDecision(decision),
	); err != nil {
		return UpdateAffiliationStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAffiliationStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAffiliationStatusCommandIsNotConstructed)
}

// AffiliationID returns the affiliation being decided.
func (c UpdateAffiliationStatusCommand) AffiliationID() kernel.UUID {
	return c.affiliationID
}

// EstablishmentID returns the deciding establishment.
func (c UpdateAffiliationStatusCommand) EstablishmentID() kernel.UUID {
	return c.establishmentID
}

// AccessCode returns the establishment's presented access code.
func (c UpdateAffiliationStatusCommand) AccessCode() string {
	return c.accessCode
}

// Decision returns the approval decision.
func (c UpdateAffiliationStatusCommand) Decision() affiliation.ApprovalStatus {
	return c.decision
}

func (c *UpdateAffiliationStatusCommand) setAffiliationID(affiliationID kernel.UUID) error {
	if err := affiliationID.Validate(); err != nil {
		return err
	}

	c.affiliationID = affiliationID
	return nil
}

func (c *UpdateAffiliationStatusCommand) setEstablishmentID(establishmentID kernel.UUID) error {
	if err := establishmentID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("establishment id is invalid", err)
	}

	c.establishmentID = establishmentID
	return nil
}

func (c *UpdateAffiliationStatusCommand) setAccessCode(accessCode string) error {
	if accessCode == "" {
		return errs.NewValueIsRequiredError("access code")
	}

	c.accessCode = accessCode
	return nil
}

func (c *UpdateAffiliationStatusCommand) setDecision(decision affiliation.ApprovalStatus) error {
	if err := decision.Validate(); err != nil {
		return err
	}

	c.decision = decision
	return nil
}
