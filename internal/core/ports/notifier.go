package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/account"
	"pizzeria/internal/core/domain/model/flavor"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

// Notifier delivers out-of-band messages to marketplace participants.
// Notifications are side effects of committed state changes: handlers call
// the notifier only after the owning transaction has committed, and a
// notification failure never rolls the state change back.
type Notifier interface {
	// OrderDispatched tells the order's customer that a courier is on the
	// way, including the courier's name and vehicle description.
	OrderDispatched(ctx context.Context, o *order.Order, courier *account.Courier) error

	// CouriersUnavailable tells the order's customer that no courier is
	// currently available and the order will wait in the Ready queue.
	CouriersUnavailable(ctx context.Context, o *order.Order) error

	// OrderDelivered tells the order's establishment that the customer
	// confirmed receipt.
	OrderDelivered(ctx context.Context, o *order.Order) error

	// FlavorAvailable tells each registered customer that the flavor can be
	// ordered again.
	FlavorAvailable(ctx context.Context, customerIDs []kernel.UUID, f *flavor.Flavor) error
}
