package commands

import (
	"context"
	"fmt"
	"time"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Prices the order from the establishment's menu and creates it in Received
// status, unpaid.
//
// Pricing rules:
//   - A single-flavor pizza costs the flavor's price for the chosen size
//   - A half-and-half pizza costs the mean of its two flavors' large prices
//   - Every flavor must belong to the establishment and be available
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command. Authorizes the customer,
// prices the pizzas against the establishment's menu, and persists the new
// order atomically.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	if _, err = uow.EstablishmentRepository().Get(ctx, cmd.EstablishmentID()); err != nil {
		return err
	}

	total, err := h.priceOrder(ctx, uow, cmd)
	if err != nil {
		return err
	}

	deliveryAddress := cmd.DeliveryAddress()
	if deliveryAddress == "" {
		deliveryAddress = customer.Address()
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.CustomerID(), cmd.EstablishmentID(),
		deliveryAddress, cmd.Pizzas(), total, time.Now(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// priceOrder sums the price of every pizza on the command against the
// establishment's menu.
func (h CreateOrderCommandHandler) priceOrder(ctx context.Context, uow UoW, cmd CreateOrderCommand) (float64, error) {
	var total float64

	for _, pizza := range cmd.Pizzas() {
		flavorIDs := pizza.FlavorIDs()

		var pizzaPrice float64
		for _, flavorID := range flavorIDs {
			f, err := uow.FlavorRepository().Get(ctx, flavorID)
			if err != nil {
				return 0, err
			}

			if !f.EstablishmentID().IsEqual(cmd.EstablishmentID()) {
				return 0, errs.NewObjectNotFoundError("flavorID", flavorID)
			}
			if !f.IsAvailable() {
				return 0, errs.NewConflictError(fmt.Sprintf("flavor %s is not available", f.Name()))
			}

			price, err := f.PriceFor(pizza.Size())
			if err != nil {
				return 0, err
			}
			pizzaPrice += price
		}

		total += pizzaPrice / float64(len(flavorIDs))
	}

	return total, nil
}
