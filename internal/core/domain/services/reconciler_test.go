package services_test

import (
	"testing"
	"time"

	"freight/internal/core/domain/model/cargo"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconciler_Reconcile(t *testing.T) {
	clockAt := now.Add(24 * time.Hour)
	reconciler := services.NewReconciler(services.FixedClock(clockAt))

	t.Run("should move pending parcels of a run in transit, once", func(t *testing.T) {
		snap, run, parcels := buildSnapshot(t,
			runFixture{availability: cargo.Closed, progress: cargo.InTransit},
			parcelFixture{weight: "1"},
		)

		fixed, corrections := reconciler.Reconcile(snap)

		require.Len(t, corrections, 1)
		assert.True(t, corrections[0].ParcelID.IsEqual(parcels[0].ID()))
		assert.True(t, corrections[0].RunID.IsEqual(run.ID()))
		assert.Equal(t, parcel.Pending, corrections[0].From)
		assert.Equal(t, parcel.InTransit, corrections[0].To)

		got, err := fixed.Parcel(parcels[0].ID())
		require.NoError(t, err)
		assert.Equal(t, parcel.InTransit, got.Status())

		_, again := reconciler.Reconcile(fixed)
		assert.Empty(t, again)
	})

	t.Run("should not modify its input", func(t *testing.T) {
		snap, _, parcels := buildSnapshot(t,
			runFixture{availability: cargo.Closed, progress: cargo.InTransit},
			parcelFixture{weight: "1"},
		)

		_, corrections := reconciler.Reconcile(snap)

		require.Len(t, corrections, 1)
		assert.Equal(t, parcel.Pending, parcels[0].Status())
	})

	t.Run("should stamp arrival with the run arrival time", func(t *testing.T) {
		arrived := now.Add(6 * time.Hour)
		snap, _, parcels := buildSnapshot(t,
			runFixture{availability: cargo.Closed, progress: cargo.Arrived, arrivedAt: &arrived},
			parcelFixture{weight: "1", status: parcel.InTransit},
		)

		fixed, corrections := reconciler.Reconcile(snap)

		require.Len(t, corrections, 1)
		got, _ := fixed.Parcel(parcels[0].ID())
		assert.Equal(t, parcel.Arrived, got.Status())
		assert.Equal(t, arrived, *got.ArrivedAt())
		assert.Equal(t, arrived, corrections[0].At)
	})

	t.Run("should fall back to the clock without a run arrival", func(t *testing.T) {
		snap, _, parcels := buildSnapshot(t,
			runFixture{availability: cargo.Closed, progress: cargo.Arrived},
			parcelFixture{weight: "1", status: parcel.InTransit},
		)

		fixed, _ := reconciler.Reconcile(snap)

		got, _ := fixed.Parcel(parcels[0].ID())
		assert.Equal(t, clockAt, *got.ArrivedAt())
	})

	t.Run("should leave terminal and aligned parcels alone", func(t *testing.T) {
		snap, _, _ := buildSnapshot(t,
			runFixture{availability: cargo.Closed, progress: cargo.Arrived},
			parcelFixture{weight: "1", status: parcel.Lost},
			parcelFixture{weight: "1", status: parcel.Recovered},
			parcelFixture{weight: "1", status: parcel.Archived},
			parcelFixture{weight: "1", status: parcel.Arrived},
			parcelFixture{weight: "1", status: parcel.Pending},
		)

		_, corrections := reconciler.Reconcile(snap)

		assert.Empty(t, corrections)
	})

	t.Run("should leave pending runs alone", func(t *testing.T) {
		snap, _, _ := buildSnapshot(t,
			runFixture{availability: cargo.Closed},
			parcelFixture{weight: "1"},
			parcelFixture{weight: "1", status: parcel.Cancelled},
		)

		_, corrections := reconciler.Reconcile(snap)

		assert.Empty(t, corrections)
	})
}
