package commands

import (
	"context"
	"time"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/services"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/pkg/errs"
)

// ConfirmDeliveryCommandHandler handles the delivery confirmation: the order
// becomes Delivered and the courier is released back into the establishment's
// assignment queue with the delivery time stamped. After the commit the
// establishment is notified and, since the courier just became Active again,
// one backlog assignment round runs for the establishment.
type ConfirmDeliveryCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery
// confirmations.
func NewConfirmDeliveryCommandHandler(
	uowFactory UoWFactory, notifier ports.Notifier,
) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the delivery confirmation. Only the order's own customer
// can confirm, and only while the order is InTransit.
func (h ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := h.confirm(ctx, cmd)
	if err != nil {
		return err
	}

	// The courier is already released at this point, so a failed
	// notification must not skip the backlog round.
	notifyErr := h.notifier.OrderDelivered(ctx, o)

	// The released courier may pick up a waiting order right away.
	if _, err = assignOldestReadyOrder(ctx, h.uowFactory, h.notifier, o.EstablishmentID()); err != nil {
		return err
	}

	return notifyErr
}

func (h ConfirmDeliveryCommandHandler) confirm(
	ctx context.Context, cmd ConfirmDeliveryCommand,
) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customer, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}
	if err = customer.CheckAccessCode(cmd.AccessCode()); err != nil {
		return nil, err
	}

	o, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if !o.CustomerID().IsEqual(cmd.CustomerID()) {
		return nil, errs.NewUnauthorizedError("order belongs to another customer")
	}
	if o.Courier() == nil {
		return nil, errs.NewInvalidOperationError("order Ready has not been assigned to a courier yet")
	}

	aff, err := uow.AffiliationRepository().GetDeliveringByCourierAndEstablishment(
		ctx, *o.Courier(), o.EstablishmentID())
	if err != nil {
		return nil, err
	}
	if aff == nil {
		return nil, errs.NewObjectNotFoundError("courierID", o.Courier().String())
	}

	if err = services.NewAssignmentEngine().Release(o, aff, time.Now()); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return nil, err
	}
	if err = uow.AffiliationRepository().Update(ctx, aff); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
