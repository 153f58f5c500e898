package commands

import (
	"context"

	"pizzeria/internal/pkg/errs"
)

// UpdateAffiliationStatusCommandHandler handles the establishment's decision
// on an affiliation request. A request is decided once; approval leaves the
// courier Resting until the courier activates themselves.
type UpdateAffiliationStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateAffiliationStatusCommandHandler creates a handler for affiliation
// decisions.
func NewUpdateAffiliationStatusCommandHandler(uowFactory UoWFactory) UpdateAffiliationStatusCommandHandler {
	return UpdateAffiliationStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the decision command. Only the establishment named on the
// affiliation can decide it.
func (h UpdateAffiliationStatusCommandHandler) Handle(
	ctx context.Context, cmd UpdateAffiliationStatusCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	establishment, err := uow.EstablishmentRepository().Get(ctx, cmd.EstablishmentID())
	if err != nil {
		return err
	}
	if err = establishment.CheckAccessCode(cmd.AccessCode()); err != nil {
		return err
	}

	aff, err := uow.AffiliationRepository().Get(ctx, cmd.AffiliationID())
	if err != nil {
		return err
	}
	if !aff.EstablishmentID().IsEqual(cmd.EstablishmentID()) {
		return errs.NewUnauthorizedError("affiliation belongs to another establishment")
	}

	if err = aff.UpdateApproval(cmd.Decision()); err != nil {
		return err
	}

	if err = uow.AffiliationRepository().Update(ctx, aff); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
