// Package snapshotrepo persists the freight snapshot in PostgreSQL: runs in
// cargo_runs, parcels in parcels, and the optimistic version counter in
// snapshot_versions.
package snapshotrepo

import (
	"time"

	"freight/internal/core/domain/model/cargo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// snapshotVersionRowID is the id of the single row of snapshot_versions.
const snapshotVersionRowID = 1

// CargoRunDTO is one row of cargo_runs. Status columns hold the wire codes so
// that raw SQL read models can group on them directly.
type CargoRunDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number       string          `gorm:"type:varchar(64);uniqueIndex;not null"`
	Mode         string          `gorm:"type:varchar(16);not null"`
	MaxWeight    decimal.Decimal `gorm:"type:numeric;not null"`
	Distance     decimal.Decimal `gorm:"type:numeric;not null"`
	Availability string          `gorm:"type:varchar(16);not null"`
	Progress     string          `gorm:"type:varchar(16);index;not null"`
	ParcelIDs    []string        `gorm:"type:text;serializer:json"`
	PriceTotal   decimal.Decimal `gorm:"type:numeric;not null"`
	CreatedAt    time.Time
	DepartedAt   *time.Time
	ArrivedAt    *time.Time
}

func (CargoRunDTO) TableName() string {
	return "cargo_runs"
}

// ParcelDTO is one row of parcels.
type ParcelDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RunID        *uuid.UUID      `gorm:"type:uuid;index"`
	Weight       decimal.Decimal `gorm:"type:numeric;not null"`
	Category     string          `gorm:"type:varchar(64);not null"`
	Count        int             `gorm:"not null"`
	ToxicityTier *int
	BaseTariff   decimal.Decimal `gorm:"type:numeric;not null"`
	FinalTariff  decimal.Decimal `gorm:"type:numeric;not null"`
	Status       string          `gorm:"type:varchar(16);index;not null"`
	CreatedAt    time.Time
	ArrivedAt    *time.Time
	RecoveredAt  *time.Time
	LostAt       *time.Time
}

func (ParcelDTO) TableName() string {
	return "parcels"
}

// SnapshotVersionDTO holds the version compared and bumped by every save.
type SnapshotVersionDTO struct {
	ID      int   `gorm:"primaryKey;autoIncrement:false"`
	Version int64 `gorm:"not null;default:0"`
}

func (SnapshotVersionDTO) TableName() string {
	return "snapshot_versions"
}

// Models lists every DTO, in migration order.
func Models() []any {
	return []any{&CargoRunDTO{}, &ParcelDTO{}, &SnapshotVersionDTO{}}
}

func runFromDomain(run *cargo.Run) CargoRunDTO {
	ids := run.ParcelIDs()
	parcelIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		parcelIDs = append(parcelIDs, id.String())
	}

	return CargoRunDTO{
		ID:           run.ID().Bytes(),
		Number:       run.Number(),
		Mode:         run.Mode().String(),
		MaxWeight:    run.MaxWeight().Decimal(),
		Distance:     run.Distance().Decimal(),
		Availability: run.Availability().String(),
		Progress:     run.Progress().String(),
		ParcelIDs:    parcelIDs,
		PriceTotal:   run.PriceTotal().Decimal(),
		CreatedAt:    run.CreatedAt(),
		DepartedAt:   run.DepartedAt(),
		ArrivedAt:    run.ArrivedAt(),
	}
}

func runToDomain(dto CargoRunDTO) (*cargo.Run, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	mode, err := kernel.ParseTransportMode(dto.Mode)
	if err != nil {
		return nil, err
	}
	availability, err := cargo.ParseAvailability(dto.Availability)
	if err != nil {
		return nil, err
	}
	progress, err := cargo.ParseProgress(dto.Progress)
	if err != nil {
		return nil, err
	}
	maxWeight, err := kernel.NewWeight(dto.MaxWeight)
	if err != nil {
		return nil, err
	}
	distance, err := kernel.NewDistance(dto.Distance)
	if err != nil {
		return nil, err
	}
	priceTotal, err := kernel.NewMoney(dto.PriceTotal)
	if err != nil {
		return nil, err
	}

	parcelIDs := make([]kernel.UUID, 0, len(dto.ParcelIDs))
	for _, raw := range dto.ParcelIDs {
		parcelID, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return nil, idErr
		}
		parcelIDs = append(parcelIDs, parcelID)
	}

	return cargo.RestoreRun(cargo.RunState{
		ID:           id,
		Number:       dto.Number,
		Mode:         mode,
		MaxWeight:    maxWeight,
		Distance:     distance,
		Availability: availability,
		Progress:     progress,
		ParcelIDs:    parcelIDs,
		PriceTotal:   priceTotal,
		CreatedAt:    dto.CreatedAt.UTC(),
		DepartedAt:   utc(dto.DepartedAt),
		ArrivedAt:    utc(dto.ArrivedAt),
	})
}

func parcelFromDomain(p *parcel.Parcel) ParcelDTO {
	var runID *uuid.UUID
	if id := p.RunID(); id != nil {
		raw := id.Bytes()
		runID = &raw
	}

	return ParcelDTO{
		ID:           p.ID().Bytes(),
		RunID:        runID,
		Weight:       p.Weight().Decimal(),
		Category:     p.Category().String(),
		Count:        p.Count(),
		ToxicityTier: p.ToxicityTier(),
		BaseTariff:   p.BaseTariff().Decimal(),
		FinalTariff:  p.FinalTariff().Decimal(),
		Status:       p.Status().String(),
		CreatedAt:    p.CreatedAt(),
		ArrivedAt:    p.ArrivedAt(),
		RecoveredAt:  p.RecoveredAt(),
		LostAt:       p.LostAt(),
	}
}

func parcelToDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var runID *kernel.UUID
	if dto.RunID != nil {
		rID, runErr := kernel.UUIDFromBytes((*dto.RunID)[:])
		if runErr != nil {
			return nil, runErr
		}
		runID = &rID
	}

	weight, err := kernel.NewWeight(dto.Weight)
	if err != nil {
		return nil, err
	}
	category, err := kernel.NewGoodsCategory(dto.Category)
	if err != nil {
		return nil, err
	}
	status, err := parcel.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	base, err := kernel.NewMoney(dto.BaseTariff)
	if err != nil {
		return nil, err
	}
	final, err := kernel.NewMoney(dto.FinalTariff)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(parcel.State{
		ID:           id,
		RunID:        runID,
		Weight:       weight,
		Category:     category,
		Count:        dto.Count,
		ToxicityTier: dto.ToxicityTier,
		BaseTariff:   base,
		FinalTariff:  final,
		Status:       status,
		CreatedAt:    dto.CreatedAt.UTC(),
		ArrivedAt:    utc(dto.ArrivedAt),
		RecoveredAt:  utc(dto.RecoveredAt),
		LostAt:       utc(dto.LostAt),
	})
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	out := t.UTC()
	return &out
}
