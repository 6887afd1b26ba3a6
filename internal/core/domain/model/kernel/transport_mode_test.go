package kernel_test

import (
	"testing"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransportMode(t *testing.T) {
	t.Run("should map wire names both ways", func(t *testing.T) {
		cases := map[string]kernel.TransportMode{
			"routiere": kernel.Road,
			"maritime": kernel.Sea,
			"aerienne": kernel.Air,
		}

		for name, want := range cases {
			got, err := kernel.ParseTransportMode(name)

			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.Equal(t, name, got.String())
			require.NoError(t, got.Validate())
		}
	})

	t.Run("should reject unknown names and values", func(t *testing.T) {
		_, err := kernel.ParseTransportMode("ferroviaire")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		require.ErrorIs(t, kernel.UnknownMode.Validate(), errs.ErrValueIsInvalid)
		require.ErrorIs(t, kernel.TransportMode(42).Validate(), errs.ErrValueIsInvalid)
		assert.Equal(t, "unknown", kernel.TransportMode(42).String())
	})
}

func TestGoodsCategory(t *testing.T) {
	t.Run("known categories", func(t *testing.T) {
		for _, c := range []kernel.GoodsCategory{kernel.Food, kernel.Chemical, kernel.Fragile, kernel.Unbreakable} {
			assert.True(t, c.IsKnown(), c)
		}
		assert.Equal(t, "materiel-fragile", kernel.Fragile.String())
	})

	t.Run("unknown categories are valid but not known", func(t *testing.T) {
		c, err := kernel.NewGoodsCategory("  textile ")

		require.NoError(t, err)
		assert.Equal(t, kernel.GoodsCategory("textile"), c)
		assert.False(t, c.IsKnown())
	})

	t.Run("empty category is required", func(t *testing.T) {
		_, err := kernel.NewGoodsCategory("   ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
