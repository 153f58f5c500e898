package commands

import (
	"context"
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/ports"
)

var (
	// ErrNoReadyOrders signals an empty Ready backlog. An expected outcome
	// of a sweep, not a failure.
	ErrNoReadyOrders = errors.New("no ready orders found")

	// ErrNoFreeCouriers signals that Ready orders exist but no courier
	// could be claimed for any of them. Also an expected outcome.
	ErrNoFreeCouriers = errors.New("no free couriers found")
)

// AssignReadyOrdersCommandHandler sweeps the Ready-order backlog and
// attempts one assignment round per establishment that has orders waiting.
// Picks up orders left Ready when no courier was available at preparation
// time. Each round runs in its own transaction, so one establishment's
// failure does not hold back the others.
//
// Customers are NOT sent a couriers-unavailable notification by the sweep;
// they already got one when their order went Ready.
type AssignReadyOrdersCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
}

// NewAssignReadyOrdersCommandHandler creates a handler for backlog sweeps.
func NewAssignReadyOrdersCommandHandler(
	uowFactory UoWFactory, notifier ports.Notifier,
) AssignReadyOrdersCommandHandler {
	return AssignReadyOrdersCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes one sweep. Returns ErrNoReadyOrders when the backlog is
// empty and ErrNoFreeCouriers when nothing could be assigned; both are
// expected business outcomes for the caller to skip.
func (h AssignReadyOrdersCommandHandler) Handle(ctx context.Context, cmd AssignReadyOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	establishmentIDs, err := h.establishmentsWithBacklog(ctx)
	if err != nil {
		return err
	}
	if len(establishmentIDs) == 0 {
		return ErrNoReadyOrders
	}

	assigned := 0
	for _, establishmentID := range establishmentIDs {
		// Keep assigning for this establishment while both orders and
		// couriers remain.
		for {
			ok, err := assignOldestReadyOrder(ctx, h.uowFactory, h.notifier, establishmentID)
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			assigned++
		}
	}

	if assigned == 0 {
		return ErrNoFreeCouriers
	}
	return nil
}

// establishmentsWithBacklog lists the distinct establishments that currently
// have Ready orders, oldest order first.
func (h AssignReadyOrdersCommandHandler) establishmentsWithBacklog(ctx context.Context) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	readyOrders, err := uow.OrderRepository().GetAllReady(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[kernel.UUID]struct{}, len(readyOrders))
	establishmentIDs := make([]kernel.UUID, 0, len(readyOrders))
	for _, o := range readyOrders {
		if _, ok := seen[o.EstablishmentID()]; ok {
			continue
		}
		seen[o.EstablishmentID()] = struct{}{}
		establishmentIDs = append(establishmentIDs, o.EstablishmentID())
	}

	return establishmentIDs, nil
}
