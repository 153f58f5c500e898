package commands

import (
	"context"

	"pizzeria/internal/pkg/errs"
)

// ConfirmPaymentCommandHandler handles order payment. Settling the payment
// applies the method's discount and immediately starts preparation; the two
// changes commit together.
type ConfirmPaymentCommandHandler struct {
	uowFactory UoWFactory
}

// NewConfirmPaymentCommandHandler creates a handler for payment operations.
func NewConfirmPaymentCommandHandler(uowFactory UoWFactory) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment command. Only the order's own customer can
// pay, a settled order cannot be paid again, and the order moves to
// InPreparation in the same transaction.
func (h ConfirmPaymentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentCommand) error {
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

	if err = o.ConfirmPayment(cmd.Method()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
