// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// an engine call on the loaded snapshot, and persistence of the result.
package commands

import (
	"context"

	"freight/internal/core/application/engine"
	"freight/internal/core/domain/model/snapshot"
	"freight/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// SnapshotRepoFactory provides access to the snapshot repository within a transaction.
	SnapshotRepoFactory interface {
		SnapshotRepository() ports.SnapshotRepository
	}

	// UoW manages one load-transform-save cycle of the snapshot.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.SnapshotRepository()
	//   snap, err := repo.Load(ctx)
	//   // ... engine call
	//   err = repo.Save(ctx, next)
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		SnapshotRepoFactory
	}

	// UoWFactory creates new unit of work instances.
	UoWFactory interface {
		Create() UoW
	}
)

// transformFunc is one engine operation applied to a loaded snapshot.
type transformFunc func(snap *snapshot.Snapshot) (*snapshot.Snapshot, engine.Report, error)

// transform loads the snapshot, applies fn and saves the result in one
// transaction. Nothing is saved when fn fails. With skipNoop a Noop report
// ends the transaction without writing.
func transform(ctx context.Context, uowFactory UoWFactory, skipNoop bool, fn transformFunc) (engine.Report, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return engine.Report{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.SnapshotRepository()

	snap, err := repo.Load(ctx)
	if err != nil {
		return engine.Report{}, err
	}

	next, report, err := fn(snap)
	if err != nil {
		return engine.Report{}, err
	}

	if skipNoop && report.Noop {
		return report, nil
	}

	if err = repo.Save(ctx, next); err != nil {
		return engine.Report{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return engine.Report{}, err
	}

	return report, nil
}
