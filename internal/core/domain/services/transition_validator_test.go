package services_test

import (
	"testing"

	"freight/internal/core/domain/model/cargo"
	"freight/internal/core/domain/model/parcel"
	"freight/internal/core/domain/services"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionValidator_Parcel(t *testing.T) {
	v := services.NewTransitionValidator()

	t.Run("should accept table transitions", func(t *testing.T) {
		assert.True(t, v.IsParcelTransitionLegal(parcel.Pending, parcel.Cancelled))
		assert.True(t, v.IsParcelTransitionLegal(parcel.Lost, parcel.Archived))
		require.NoError(t, v.ValidateParcelTransition(parcel.InTransit, parcel.Lost))
	})

	t.Run("should reject others with both statuses named", func(t *testing.T) {
		assert.False(t, v.IsParcelTransitionLegal(parcel.Cancelled, parcel.Pending))

		err := v.ValidateParcelTransition(parcel.Archived, parcel.Recovered)

		require.ErrorIs(t, err, errs.ErrLegality)
		assert.Contains(t, err.Error(), "ARCHIVE -> RECUPERE")
	})
}

func TestTransitionValidator_Run(t *testing.T) {
	v := services.NewTransitionValidator()

	t.Run("should require a seal before departure", func(t *testing.T) {
		_, run, _ := buildSnapshot(t, runFixture{})

		require.ErrorIs(t, v.ValidateRunTransition(run, cargo.Depart), errs.ErrLegality)
		require.NoError(t, v.ValidateRunTransition(run, cargo.Close))
	})

	t.Run("should refuse reopening a departed run", func(t *testing.T) {
		_, run, _ := buildSnapshot(t, runFixture{availability: cargo.Closed, progress: cargo.InTransit})

		require.ErrorIs(t, v.ValidateRunTransition(run, cargo.Reopen), errs.ErrLegality)
		require.NoError(t, v.ValidateRunTransition(run, cargo.Arrive))
	})

	t.Run("should refuse an unconstructed run", func(t *testing.T) {
		require.ErrorIs(t, v.ValidateRunTransition(&cargo.Run{}, cargo.Close), cargo.ErrRunIsNotConstructed)
	})
}
