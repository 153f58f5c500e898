package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/affiliation"
	"pizzeria/internal/pkg/errs"
)

// RequestAffiliationCommandHandler handles affiliation requests. A courier
// may have at most one non-rejected affiliation per establishment; a
// rejected request does not block asking again.
type RequestAffiliationCommandHandler struct {
	uowFactory UoWFactory
}

// NewRequestAffiliationCommandHandler creates a handler for affiliation
// requests.
func NewRequestAffiliationCommandHandler(uowFactory UoWFactory) RequestAffiliationCommandHandler {
	return RequestAffiliationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the affiliation request.
func (h RequestAffiliationCommandHandler) Handle(ctx context.Context, cmd RequestAffiliationCommand) error {
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

	courier, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}
	if err = courier.CheckAccessCode(cmd.AccessCode()); err != nil {
		return err
	}

	if _, err = uow.EstablishmentRepository().Get(ctx, cmd.EstablishmentID()); err != nil {
		return err
	}

	existing, err := uow.AffiliationRepository().GetAllByCourierAndEstablishment(
		ctx, cmd.CourierID(), cmd.EstablishmentID())
	if err != nil {
		return err
	}
	for _, a := range existing {
		if a.Blocks() {
			return errs.NewConflictError("affiliation already exists")
		}
	}

	newAffiliation, err := affiliation.NewAffiliation(
		cmd.AffiliationID(), cmd.CourierID(), cmd.EstablishmentID())
	if err != nil {
		return err
	}

	if err = uow.AffiliationRepository().Add(ctx, newAffiliation); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
