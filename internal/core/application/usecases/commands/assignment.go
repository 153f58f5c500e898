package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/account"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/core/ports"
)

// attemptAssignment claims the longest-waiting Active courier of the order's
// establishment within the caller's transaction. The affiliation row is
// locked by the repository query, so concurrent assignments for the same
// establishment serialize on it.
//
// Returns the claimed courier's account for the dispatched notification, or
// nil when no courier is available, in which case the order is untouched.
// The caller persists the order itself.
func attemptAssignment(ctx context.Context, uow UoW, o *order.Order) (*account.Courier, error) {
	aff, err := uow.AffiliationRepository().GetOldestActiveForEstablishment(ctx, o.EstablishmentID())
	if err != nil {
		return nil, err
	}
	if aff == nil {
		return nil, nil
	}

	if err = services.NewAssignmentEngine().Claim(o, aff); err != nil {
		return nil, err
	}

	if err = uow.AffiliationRepository().Update(ctx, aff); err != nil {
		return nil, err
	}

	return uow.CourierRepository().Get(ctx, aff.CourierID())
}

// assignOldestReadyOrder runs one assignment round for the establishment in
// its own transaction: pick the oldest Ready order, claim a courier for it,
// persist both aggregates, commit, then notify the customer. Triggered
// whenever a courier becomes Active and by the background sweep.
//
// Returns false when there is no Ready order or no free courier; the round
// is then a no-op and no one is notified.
func assignOldestReadyOrder(
	ctx context.Context,
	uowFactory UoWFactory,
	notifier ports.Notifier,
	establishmentID kernel.UUID,
) (bool, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().GetOldestReadyForEstablishment(ctx, establishmentID)
	if err != nil {
		return false, err
	}
	if o == nil {
		return false, nil
	}

	courier, err := attemptAssignment(ctx, uow, o)
	if err != nil {
		return false, err
	}
	if courier == nil {
		return false, nil
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, notifier.OrderDispatched(ctx, o, courier)
}
