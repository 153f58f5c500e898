package commands

import (
	"context"

	"pizzeria/internal/core/ports"
	"pizzeria/internal/pkg/errs"
)

// UpdateFlavorAvailabilityCommandHandler handles flavor availability flips.
// Turning a flavor available drains its interest set under a row lock, so
// every registered customer is notified exactly once: the drain and the flag
// commit together, and the notifications go out only after the commit.
type UpdateFlavorAvailabilityCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewUpdateFlavorAvailabilityCommandHandler creates a handler for flavor
// availability flips.
func NewUpdateFlavorAvailabilityCommandHandler(
	uowFactory UoWFactory, notifier ports.Notifier,
) UpdateFlavorAvailabilityCommandHandler {
	return UpdateFlavorAvailabilityCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the availability flip. Only the flavor's own
// establishment can flip it.
func (h UpdateFlavorAvailabilityCommandHandler) Handle(
	ctx context.Context, cmd UpdateFlavorAvailabilityCommand,
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

	f, err := uow.FlavorRepository().GetForUpdate(ctx, cmd.FlavorID())
	if err != nil {
		return err
	}
	if !f.EstablishmentID().IsEqual(cmd.EstablishmentID()) {
		return errs.NewUnauthorizedError("flavor belongs to another establishment")
	}

	notified := f.UpdateAvailability(cmd.Available())

	if err = uow.FlavorRepository().Update(ctx, f); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if len(notified) == 0 {
		return nil
	}
	return h.notifier.FlavorAvailable(ctx, notified, f)
}
