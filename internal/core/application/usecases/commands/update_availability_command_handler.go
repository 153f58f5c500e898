package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/affiliation"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/pkg/errs"
)

// UpdateAvailabilityCommandHandler handles courier availability changes. A
// courier coming Active joins the establishment's assignment queue, so after
// the commit one backlog assignment round runs for the establishment.
type UpdateAvailabilityCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewUpdateAvailabilityCommandHandler creates a handler for availability
// changes.
func NewUpdateAvailabilityCommandHandler(
	uowFactory UoWFactory, notifier ports.Notifier,
) UpdateAvailabilityCommandHandler {
	return UpdateAvailabilityCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the availability command. Only the affiliation's own
// courier can change it, and only while the affiliation is Approved.
func (h UpdateAvailabilityCommandHandler) Handle(ctx context.Context, cmd UpdateAvailabilityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	establishmentID, err := h.update(ctx, cmd)
	if err != nil {
		return err
	}

	if cmd.Availability() != affiliation.Active {
		return nil
	}

	// The newly Active courier may pick up a waiting order right away.
	_, err = assignOldestReadyOrder(ctx, h.uowFactory, h.notifier, establishmentID)
	return err
}

func (h UpdateAvailabilityCommandHandler) update(
	ctx context.Context, cmd UpdateAvailabilityCommand,
) (kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courier, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = courier.CheckAccessCode(cmd.AccessCode()); err != nil {
		return kernel.UUID{}, err
	}

	aff, err := uow.AffiliationRepository().Get(ctx, cmd.AffiliationID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if !aff.CourierID().IsEqual(cmd.CourierID()) {
		return kernel.UUID{}, errs.NewUnauthorizedError("affiliation belongs to another courier")
	}

	if err = aff.UpdateAvailability(cmd.Availability()); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.AffiliationRepository().Update(ctx, aff); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return aff.EstablishmentID(), nil
}
