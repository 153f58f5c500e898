package commands

import (
	"context"
)

// RemoveInterestCommandHandler handles interest withdrawals.
type RemoveInterestCommandHandler struct {
	uowFactory UoWFactory
}

// NewRemoveInterestCommandHandler creates a handler for interest
// withdrawals.
func NewRemoveInterestCommandHandler(uowFactory UoWFactory) RemoveInterestCommandHandler {
	return RemoveInterestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the withdrawal. Withdrawing an absent registration is a
// no-op.
func (h RemoveInterestCommandHandler) Handle(ctx context.Context, cmd RemoveInterestCommand) error {
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

	customer, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if err = customer.CheckAccessCode(cmd.AccessCode()); err != nil {
		return err
	}

	f, err := uow.FlavorRepository().GetForUpdate(ctx, cmd.FlavorID())
	if err != nil {
		return err
	}

	if err = f.RemoveInterest(cmd.CustomerID()); err != nil {
		return err
	}

	if err = uow.FlavorRepository().Update(ctx, f); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
