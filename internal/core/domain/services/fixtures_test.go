package services_test

import (
	"testing"
	"time"

	"freight/internal/core/domain/model/cargo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/core/domain/model/snapshot"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

func weight(t *testing.T, kg string) kernel.Weight {
	t.Helper()
	w, err := kernel.NewWeight(decimal.RequireFromString(kg))
	require.NoError(t, err)
	return w
}

func distance(t *testing.T, km float64) kernel.Distance {
	t.Helper()
	d, err := kernel.DistanceFromFloat(km)
	require.NoError(t, err)
	return d
}

func intPtr(v int) *int {
	return &v
}

type runFixture struct {
	mode         kernel.TransportMode
	maxWeight    string
	availability cargo.Availability
	progress     cargo.Progress
	arrivedAt    *time.Time
}

type parcelFixture struct {
	weight   string
	category kernel.GoodsCategory
	status   parcel.Status
}

// buildSnapshot restores one run carrying the given parcels, in order.
func buildSnapshot(t *testing.T, rf runFixture, pfs ...parcelFixture) (*snapshot.Snapshot, *cargo.Run, []*parcel.Parcel) {
	t.Helper()

	if rf.mode == kernel.UnknownMode {
		rf.mode = kernel.Road
	}
	if rf.maxWeight == "" {
		rf.maxWeight = "100"
	}
	if rf.availability == cargo.UnknownAvailability {
		rf.availability = cargo.Open
	}
	if rf.progress == cargo.UnknownProgress {
		rf.progress = cargo.Pending
	}

	runID := kernel.NewUUID()
	parcels := make([]*parcel.Parcel, 0, len(pfs))
	ids := make([]kernel.UUID, 0, len(pfs))
	for _, pf := range pfs {
		if pf.category == "" {
			pf.category = kernel.Food
		}
		if pf.status == parcel.Unknown {
			pf.status = parcel.Pending
		}
		p, err := parcel.RestoreParcel(parcel.State{
			ID:          kernel.NewUUID(),
			RunID:       &runID,
			Weight:      weight(t, pf.weight),
			Category:    pf.category,
			Count:       1,
			FinalTariff: kernel.MoneyFromInt(10000),
			Status:      pf.status,
			CreatedAt:   now,
		})
		require.NoError(t, err)
		parcels = append(parcels, p)
		ids = append(ids, p.ID())
	}

	run, err := cargo.RestoreRun(cargo.RunState{
		ID:           runID,
		Number:       "R-" + runID.String()[:8],
		Mode:         rf.mode,
		MaxWeight:    weight(t, rf.maxWeight),
		Distance:     distance(t, 100),
		Availability: rf.availability,
		Progress:     rf.progress,
		ParcelIDs:    ids,
		PriceTotal:   kernel.MoneyFromInt(int64(10000 * len(ids))),
		CreatedAt:    now,
		ArrivedAt:    rf.arrivedAt,
	})
	require.NoError(t, err)

	snap, err := snapshot.New([]*cargo.Run{run}, parcels, 1)
	require.NoError(t, err)
	return snap, run, parcels
}

func newLooseParcel(t *testing.T, kg string, category kernel.GoodsCategory) *parcel.Parcel {
	t.Helper()
	var tier *int
	if category == kernel.Chemical {
		tier = intPtr(1)
	}
	p, err := parcel.NewParcel(kernel.NewUUID(), weight(t, kg), category, 1, tier, now)
	require.NoError(t, err)
	return p
}
