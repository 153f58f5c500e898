package commands

import (
	"context"
)

// ExpressInterestCommandHandler handles interest registrations. The flavor
// row is locked while the set changes so a concurrent availability flip
// cannot lose the registration.
type ExpressInterestCommandHandler struct {
	uowFactory UoWFactory
}

// NewExpressInterestCommandHandler creates a handler for interest
// registrations.
func NewExpressInterestCommandHandler(uowFactory UoWFactory) ExpressInterestCommandHandler {
	return ExpressInterestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration. Registering for an available flavor is
// a conflict; registering twice is a no-op.
func (h ExpressInterestCommandHandler) Handle(ctx context.Context, cmd ExpressInterestCommand) error {
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

	if err = f.ExpressInterest(cmd.CustomerID()); err != nil {
		return err
	}

	if err = uow.FlavorRepository().Update(ctx, f); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
