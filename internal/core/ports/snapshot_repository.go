package ports

import (
	"context"

	"freight/internal/core/domain/model/snapshot"
)

// SnapshotRepository is the storage contract of the lifecycle engine: the
// whole set of runs and parcels is read and written as one value.
type SnapshotRepository interface {
	// Load returns every run and parcel together with the stored version.
	Load(ctx context.Context) (*snapshot.Snapshot, error)

	// Save writes the snapshot if the stored version still equals
	// snap.Version(), and bumps the stored version. A stale snapshot fails
	// with errs.VersionIsInvalidError and nothing is written.
	Save(ctx context.Context, snap *snapshot.Snapshot) error
}
