package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/affiliation"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/pkg/errs"
)

// WithdrawOrderCommandHandler handles order withdrawal by the establishment.
// Unlike customer cancellation, withdrawal is not limited by the order's
// status: an establishment can pull any of its orders, and if a courier is
// already out with it, the courier's affiliation is released back to Active in
// the same transaction. A released courier triggers one backlog assignment
// round after the commit.
type WithdrawOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewWithdrawOrderCommandHandler creates a handler for order withdrawal.
func NewWithdrawOrderCommandHandler(
	uowFactory UoWFactory, notifier ports.Notifier,
) WithdrawOrderCommandHandler {
	return WithdrawOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the withdrawal command.
func (h WithdrawOrderCommandHandler) Handle(ctx context.Context, cmd WithdrawOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	courierReleased, err := h.withdraw(ctx, cmd)
	if err != nil {
		return err
	}

	if courierReleased {
		if _, err = assignOldestReadyOrder(
			ctx, h.uowFactory, h.notifier, cmd.EstablishmentID()); err != nil {
			return err
		}
	}

	return nil
}

func (h WithdrawOrderCommandHandler) withdraw(
	ctx context.Context, cmd WithdrawOrderCommand,
) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	establishment, err := uow.EstablishmentRepository().Get(ctx, cmd.EstablishmentID())
	if err != nil {
		return false, err
	}
	if err = establishment.CheckAccessCode(cmd.AccessCode()); err != nil {
		return false, err
	}

	o, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return false, err
	}
	if !o.EstablishmentID().IsEqual(cmd.EstablishmentID()) {
		return false, errs.NewUnauthorizedError("order belongs to another establishment")
	}

	courierReleased := false
	if o.Courier() != nil {
		aff, err := uow.AffiliationRepository().GetDeliveringByCourierAndEstablishment(
			ctx, *o.Courier(), o.EstablishmentID())
		if err != nil {
			return false, err
		}
		if aff != nil {
			// The delivery never completed, so the courier goes back to
			// Active without a last-delivery stamp and keeps its place in
			// the assignment queue.
			if err = aff.UpdateAvailability(affiliation.Active); err != nil {
				return false, err
			}
			if err = uow.AffiliationRepository().Update(ctx, aff); err != nil {
				return false, err
			}

			courierReleased = true
		}
	}

	if err = uow.OrderRepository().Delete(ctx, o.ID()); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return courierReleased, nil
}
