// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, persistence, and post-commit notification.
package commands

import (
	"context"

	"pizzeria/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. These abstractions ensure data consistency across aggregate
// boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// AffiliationRepoFactory provides access to the affiliation repository
	// within a transaction.
	AffiliationRepoFactory interface {
		AffiliationRepository() ports.AffiliationRepository
	}

	// FlavorRepoFactory provides access to the flavor repository within a
	// transaction.
	FlavorRepoFactory interface {
		FlavorRepository() ports.FlavorRepository
	}

	// AccountRepoFactory provides access to the account repositories within
	// a transaction.
	AccountRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
		EstablishmentRepository() ports.EstablishmentRepository
		CourierRepository() ports.CourierRepository
	}

	// UoW manages transactions across every aggregate of the marketplace.
	// Commands touch account repositories for access-code checks alongside
	// their own aggregate, so all handlers share this shape.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		AffiliationRepoFactory
		FlavorRepoFactory
		AccountRepoFactory
	}

	// UoWFactory creates new unit of work instances, one per handled
	// command.
	UoWFactory interface {
		Create() UoW
	}
)
