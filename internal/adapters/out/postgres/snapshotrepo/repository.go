package snapshotrepo

import (
	"context"
	"fmt"

	"freight/internal/core/domain/model/cargo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/core/domain/model/snapshot"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSnapshotRepository implements SnapshotRepository using GORM.
type GormSnapshotRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSnapshotRepository creates a new GORM snapshot repository.
func NewGormSnapshotRepository(db *gorm.DB, tracker aggregateTracker) *GormSnapshotRepository {
	return &GormSnapshotRepository{
		db:      db,
		tracker: tracker,
	}
}

// Load reads every run and parcel. The version row is created on first use.
func (r *GormSnapshotRepository) Load(ctx context.Context) (*snapshot.Snapshot, error) {
	db := r.db.WithContext(ctx)

	version := SnapshotVersionDTO{ID: snapshotVersionRowID}
	if err := db.Where(SnapshotVersionDTO{ID: snapshotVersionRowID}).FirstOrCreate(&version).Error; err != nil {
		return nil, err
	}

	var runDTOs []CargoRunDTO
	if err := db.Order("created_at, number").Find(&runDTOs).Error; err != nil {
		return nil, err
	}

	var parcelDTOs []ParcelDTO
	if err := db.Order("created_at, id").Find(&parcelDTOs).Error; err != nil {
		return nil, err
	}

	runs := make([]*cargo.Run, 0, len(runDTOs))
	for _, dto := range runDTOs {
		run, err := runToDomain(dto)
		if err != nil {
			return nil, fmt.Errorf("run %s: %w", dto.Number, err)
		}
		runs = append(runs, run)
	}

	parcels := make([]*parcel.Parcel, 0, len(parcelDTOs))
	for _, dto := range parcelDTOs {
		p, err := parcelToDomain(dto)
		if err != nil {
			return nil, fmt.Errorf("parcel %s: %w", dto.ID, err)
		}
		parcels = append(parcels, p)
	}

	return snapshot.New(runs, parcels, version.Version)
}

// Save bumps the version row from snap.Version() and upserts every run and
// parcel. When another writer saved first the update matches no row and a
// VersionIsInvalidError is returned.
func (r *GormSnapshotRepository) Save(ctx context.Context, snap *snapshot.Snapshot) error {
	db := r.db.WithContext(ctx)

	result := db.Model(&SnapshotVersionDTO{}).
		Where("id = ? AND version = ?", snapshotVersionRowID, snap.Version()).
		Update("version", gorm.Expr("version + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidErrorWithCause(
			"snapshot",
			fmt.Errorf("version %d is no longer current", snap.Version()),
		)
	}

	runs := snap.Runs()
	if len(runs) > 0 {
		dtos := make([]CargoRunDTO, 0, len(runs))
		for _, run := range runs {
			dtos = append(dtos, runFromDomain(run))
		}
		if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&dtos).Error; err != nil {
			return err
		}
	}

	parcels := snap.Parcels()
	if len(parcels) > 0 {
		dtos := make([]ParcelDTO, 0, len(parcels))
		for _, p := range parcels {
			dtos = append(dtos, parcelFromDomain(p))
		}
		if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&dtos).Error; err != nil {
			return err
		}
	}

	for _, run := range runs {
		r.tracker.TrackAggregate(run.ID(), run)
	}
	for _, p := range parcels {
		r.tracker.TrackAggregate(p.ID(), p)
	}
	return nil
}

// Migrate creates the snapshot tables and the version row. Seeding the row up
// front keeps the first concurrent loads from racing to insert it.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&SnapshotVersionDTO{ID: snapshotVersionRowID}).Error
}
