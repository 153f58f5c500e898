// Package notify provides the outbound notification adapter. The current
// implementation writes structured log records; a real deployment would swap
// in push or messaging delivery behind the same port.
package notify

import (
	"context"
	"log/slog"

	"pizzeria/internal/core/domain/model/account"
	"pizzeria/internal/core/domain/model/flavor"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

// SlogNotifier implements the Notifier port on top of a structured logger.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a notifier that records notifications on the
// given logger.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{logger: logger}
}

// OrderDispatched tells the order's customer that a courier is on the way.
func (n *SlogNotifier) OrderDispatched(ctx context.Context, o *order.Order, courier *account.Courier) error {
	n.logger.InfoContext(ctx, "order dispatched",
		"order_id", o.ID().String(),
		"customer_id", o.CustomerID().String(),
		"courier", courier.Name(),
		"vehicle", courier.Vehicle().Description(),
	)
	return nil
}

// CouriersUnavailable tells the order's customer that the order will wait in
// the Ready queue.
func (n *SlogNotifier) CouriersUnavailable(ctx context.Context, o *order.Order) error {
	n.logger.InfoContext(ctx, "no couriers available",
		"order_id", o.ID().String(),
		"customer_id", o.CustomerID().String(),
		"establishment_id", o.EstablishmentID().String(),
	)
	return nil
}

// OrderDelivered tells the order's establishment that the customer confirmed
// receipt.
func (n *SlogNotifier) OrderDelivered(ctx context.Context, o *order.Order) error {
	n.logger.InfoContext(ctx, "order delivered",
		"order_id", o.ID().String(),
		"establishment_id", o.EstablishmentID().String(),
	)
	return nil
}

// FlavorAvailable tells each registered customer that the flavor can be
// ordered again.
func (n *SlogNotifier) FlavorAvailable(ctx context.Context, customerIDs []kernel.UUID, f *flavor.Flavor) error {
	for _, customerID := range customerIDs {
		n.logger.InfoContext(ctx, "flavor available again",
			"flavor_id", f.ID().String(),
			"flavor", f.Name(),
			"customer_id", customerID.String(),
		)
	}
	return nil
}
