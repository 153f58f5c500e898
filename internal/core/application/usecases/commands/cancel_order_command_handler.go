package commands

import (
	"context"

	"pizzeria/internal/pkg/errs"
)

// CancelOrderCommandHandler handles order cancellation. An order can only be
// cancelled by its own customer and only before preparation finishes; a
// cancelled order is deleted.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	o, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !o.CustomerID().IsEqual(cmd.CustomerID()) {
		return errs.NewUnauthorizedError("order belongs to another customer")
	}

	if err = o.ValidateCancel(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Delete(ctx, o.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
