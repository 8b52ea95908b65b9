// Package postgres provides the GORM implementation of the Unit of Work pattern
// together with the schema helpers used at startup.
//
// A unit of work wraps one database transaction. Repositories obtained from it run
// inside that transaction while it is active and on the plain connection otherwise.
//
// Usage:
//
//	uow := NewGormUnitOfWorkFactory(db).Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx) //nolint:errcheck // no-op after Commit
//
//	if err := uow.BatchOrderRepository().Add(ctx, b); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance is meant for a single goroutine; concurrent operations
// create their own instances from the factory.
package postgres

import (
	"context"

	"orderdesk/internal/adapters/out/postgres/batchrepo"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh UnitOfWork with no active transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records the aggregates
// written through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling Begin on an active unit of work is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction. Returns gorm.ErrInvalidTransaction when none is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction. Returns gorm.ErrInvalidTransaction when none is active.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// BatchOrderRepository returns a repository bound to the active transaction, if any.
func (uow *GormUnitOfWork) BatchOrderRepository() ports.BatchOrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return batchrepo.NewGormBatchOrderRepository(db, uow)
}

// TrackAggregate registers an aggregate written within this unit of work.
// Repositories call it after a successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedIDs returns the ids of the aggregates written so far, in write order.
func (uow *GormUnitOfWork) TrackedIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(uow.trackedAggregates))
	for _, t := range uow.trackedAggregates {
		ids = append(ids, t.ID)
	}
	return ids
}
