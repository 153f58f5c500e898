// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. A unit of work spans one business transaction: repositories
// obtained from it share the transaction, aggregates written through them
// are tracked, and Commit or Rollback finishes the transaction as a whole.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each Create() call returns an isolated instance; concurrent operations
// must not share one. Row locks taken by the repositories' ForUpdate
// queries are held until the unit of work commits or rolls back.
package postgres

import (
	"context"

	"pizzeria/internal/adapters/out/postgres/accountrepo"
	"pizzeria/internal/adapters/out/postgres/affiliationrepo"
	"pizzeria/internal/adapters/out/postgres/flavorrepo"
	"pizzeria/internal/adapters/out/postgres/orderrepo"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using a shared GORM
// database connection. Each business operation gets a fresh instance with
// its own transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the
// repositories and tracks the aggregates modified within it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates the database transaction. Calling Begin again on an
// instance with an open transaction is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// session returns the open transaction, or the bare connection when no
// transaction is active.
func (uow *GormUnitOfWork) session() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository provides access to order persistence within the unit of
// work.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.session(), uow)
}

// AffiliationRepository provides access to affiliation persistence within
// the unit of work.
func (uow *GormUnitOfWork) AffiliationRepository() ports.AffiliationRepository {
	return affiliationrepo.NewGormAffiliationRepository(uow.session(), uow)
}

// FlavorRepository provides access to flavor persistence within the unit of
// work.
func (uow *GormUnitOfWork) FlavorRepository() ports.FlavorRepository {
	return flavorrepo.NewGormFlavorRepository(uow.session(), uow)
}

// CustomerRepository provides access to customer persistence within the
// unit of work.
func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return accountrepo.NewGormCustomerRepository(uow.session())
}

// EstablishmentRepository provides access to establishment persistence
// within the unit of work.
func (uow *GormUnitOfWork) EstablishmentRepository() ports.EstablishmentRepository {
	return accountrepo.NewGormEstablishmentRepository(uow.session())
}

// CourierRepository provides access to courier persistence within the unit
// of work.
func (uow *GormUnitOfWork) CourierRepository() ports.CourierRepository {
	return accountrepo.NewGormCourierRepository(uow.session())
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Called by the repository implementations on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
