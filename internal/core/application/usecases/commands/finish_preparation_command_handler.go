package commands

import (
	"context"

	"pizzeria/internal/core/ports"
	"pizzeria/internal/pkg/errs"
)

// FinishPreparationCommandHandler handles the Ready transition and the
// synchronous courier assignment that follows it. The transition, the
// courier claim, and both aggregate updates commit in one transaction;
// the customer notification goes out only after the commit.
type FinishPreparationCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewFinishPreparationCommandHandler creates a handler for the Ready
// transition.
func NewFinishPreparationCommandHandler(
	uowFactory UoWFactory, notifier ports.Notifier,
) FinishPreparationCommandHandler {
	return FinishPreparationCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the command. When a courier is available the order goes
// straight to InTransit and the customer learns who is coming; otherwise the
// order stays Ready in the assignment queue and the customer is told no
// courier is available yet.
func (h FinishPreparationCommandHandler) Handle(ctx context.Context, cmd FinishPreparationCommand) error {
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

	o, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !o.EstablishmentID().IsEqual(cmd.EstablishmentID()) {
		return errs.NewUnauthorizedError("order belongs to another establishment")
	}

	if err = o.FinishPreparation(); err != nil {
		return err
	}

	courier, err := attemptAssignment(ctx, uow, o)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if courier == nil {
		return h.notifier.CouriersUnavailable(ctx, o)
	}
	return h.notifier.OrderDispatched(ctx, o, courier)
}
