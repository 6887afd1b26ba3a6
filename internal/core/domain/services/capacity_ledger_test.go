package services_test

import (
	"testing"

	"freight/internal/core/domain/model/cargo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/core/domain/services"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapacityLedger_Attach(t *testing.T) {
	ledger := services.NewCapacityLedger()

	t.Run("should accept an exact fit", func(t *testing.T) {
		snap, run, _ := buildSnapshot(t, runFixture{maxWeight: "10"}, parcelFixture{weight: "6.5"})
		p := newLooseParcel(t, "3.5", kernel.Food)
		require.NoError(t, snap.AddParcel(p))

		require.NoError(t, ledger.Attach(run, p, snap))

		assert.True(t, ledger.UsedWeight(run, snap).IsEqual(weight(t, "10")))
		assert.True(t, ledger.RemainingWeight(run, snap).IsZero())
		assert.True(t, p.IsAttachedTo(run.ID()))
		assert.True(t, run.HasParcel(p.ID()))
	})

	t.Run("should refuse one gram over", func(t *testing.T) {
		snap, run, _ := buildSnapshot(t, runFixture{maxWeight: "10"}, parcelFixture{weight: "6.5"})
		p := newLooseParcel(t, "3.501", kernel.Food)
		require.NoError(t, snap.AddParcel(p))

		err := ledger.Attach(run, p, snap)

		require.ErrorIs(t, err, errs.ErrCapacity)
		assert.Nil(t, p.RunID())
		assert.False(t, run.HasParcel(p.ID()))
	})

	t.Run("should refuse a sealed run", func(t *testing.T) {
		snap, run, _ := buildSnapshot(t, runFixture{availability: cargo.Closed})
		p := newLooseParcel(t, "1", kernel.Food)
		require.NoError(t, snap.AddParcel(p))

		require.ErrorIs(t, ledger.Attach(run, p, snap), errs.ErrCapacity)
	})

	t.Run("should refuse goods the mode cannot carry", func(t *testing.T) {
		snap, run, _ := buildSnapshot(t, runFixture{mode: kernel.Air})
		p := newLooseParcel(t, "1", kernel.Chemical)
		require.NoError(t, snap.AddParcel(p))

		err := ledger.Attach(run, p, snap)

		require.ErrorIs(t, err, errs.ErrLegality)
		assert.Contains(t, err.Error(), services.RuleChemicalSeaOnly)
	})

	t.Run("should refuse a parcel attached elsewhere", func(t *testing.T) {
		snap, run, _ := buildSnapshot(t, runFixture{})
		_, _, others := buildSnapshot(t, runFixture{}, parcelFixture{weight: "1"})

		require.ErrorIs(t, ledger.Attach(run, others[0], snap), errs.ErrLegality)
	})

	t.Run("should refuse a parcel that is no longer pending", func(t *testing.T) {
		snap, run, _ := buildSnapshot(t, runFixture{})
		p := newLooseParcel(t, "1", kernel.Food)
		require.NoError(t, p.TransitionTo(parcel.Cancelled, now))
		require.NoError(t, snap.AddParcel(p))

		require.ErrorIs(t, ledger.Attach(run, p, snap), errs.ErrLegality)
	})
}

func TestCapacityLedger_Detach(t *testing.T) {
	ledger := services.NewCapacityLedger()

	t.Run("should reduce used weight by exactly the parcel weight", func(t *testing.T) {
		snap, run, parcels := buildSnapshot(t,
			runFixture{availability: cargo.Closed, progress: cargo.InTransit},
			parcelFixture{weight: "1.25", status: parcel.InTransit},
			parcelFixture{weight: "2.75", status: parcel.InTransit},
		)
		before := ledger.UsedWeight(run, snap)

		require.NoError(t, ledger.Detach(run, parcels[0]))

		after := ledger.UsedWeight(run, snap)
		assert.True(t, before.Sub(after).IsEqual(weight(t, "1.25")))
		assert.Nil(t, parcels[0].RunID())
		assert.True(t, run.PriceTotal().IsEqual(kernel.MoneyFromInt(10000)))
	})

	t.Run("should report a parcel of another run", func(t *testing.T) {
		_, run, _ := buildSnapshot(t, runFixture{})
		p := newLooseParcel(t, "1", kernel.Food)

		require.ErrorIs(t, ledger.Detach(run, p), errs.ErrObjectNotFound)
	})
}
