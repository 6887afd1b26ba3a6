package queries_test

import (
	"context"
	"testing"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/services"
	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func TestNewQuoteTariffQuery_Valid(t *testing.T) {
	query, err := queries.NewQuoteTariffQuery("alimentaire", "routiere", decimal.NewFromInt(10), decimal.NewFromInt(1000), 1, nil)
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	req := query.Request()
	assert.Equal(t, kernel.Food, req.Category)
	assert.Equal(t, kernel.Road, req.Mode)
	assert.True(t, req.Weight.Decimal().Equal(decimal.NewFromInt(10)))
	assert.Equal(t, 1, req.ParcelCount)
}

func TestQuoteTariffQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.QuoteTariffQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrQuoteTariffQueryIsNotConstructed)
}

func TestNewQuoteTariffQuery_CheckOrder(t *testing.T) {
	tests := []struct {
		name     string
		category string
		mode     string
		weight   decimal.Decimal
		target   error
	}{
		{"unknown mode", "alimentaire", "ferroviaire", decimal.NewFromInt(1), errs.ErrValueIsInvalid},
		{"empty category", " ", "routiere", decimal.NewFromInt(1), errs.ErrValueIsRequired},
		{"illegal pairing wins over bad weight", "chimique", "routiere", decimal.NewFromInt(-5), errs.ErrLegality},
		{"fragile by sea", "materiel-fragile", "maritime", decimal.NewFromInt(1), errs.ErrLegality},
		{"non-positive weight", "alimentaire", "routiere", decimal.Zero, errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := queries.NewQuoteTariffQuery(tt.category, tt.mode, tt.weight, decimal.NewFromInt(10), 1, nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestQuoteTariffQueryHandler_Handle(t *testing.T) {
	handler := queries.NewQuoteTariffQueryHandler(
		services.NewTariffCalculator(kernel.MoneyFromInt(services.DefaultMinimumTariff)),
	)

	t.Run("food by road", func(t *testing.T) {
		query, err := queries.NewQuoteTariffQuery("alimentaire", "routiere", decimal.NewFromInt(10), decimal.NewFromInt(1000), 1, nil)
		require.NoError(t, err)

		resp, err := handler.Handle(context.Background(), query)
		require.NoError(t, err)
		assert.True(t, resp.Raw.IsEqual(kernel.MoneyFromInt(1000000)))
		assert.True(t, resp.Final.IsEqual(kernel.MoneyFromInt(1000000)))
		assert.True(t, resp.Minimum.IsEqual(kernel.MoneyFromInt(10000)))
	})

	t.Run("chemical by sea", func(t *testing.T) {
		query, err := queries.NewQuoteTariffQuery("chimique", "maritime", decimal.NewFromInt(10), decimal.NewFromInt(300), 2, intPtr(1))
		require.NoError(t, err)

		resp, err := handler.Handle(context.Background(), query)
		require.NoError(t, err)
		assert.True(t, resp.Unit.IsEqual(kernel.MoneyFromInt(15000)))
		assert.True(t, resp.Raw.IsEqual(kernel.MoneyFromInt(30000)))
		assert.True(t, resp.Final.IsEqual(kernel.MoneyFromInt(30000)))
	})

	t.Run("raised to the minimum", func(t *testing.T) {
		query, err := queries.NewQuoteTariffQuery("alimentaire", "routiere", decimal.NewFromInt(1), decimal.NewFromInt(1), 1, nil)
		require.NoError(t, err)

		resp, err := handler.Handle(context.Background(), query)
		require.NoError(t, err)
		assert.True(t, resp.Raw.IsEqual(kernel.MoneyFromInt(100)))
		assert.True(t, resp.Final.IsEqual(kernel.MoneyFromInt(10000)))
	})

	t.Run("missing toxicity tier", func(t *testing.T) {
		query, err := queries.NewQuoteTariffQuery("chimique", "maritime", decimal.NewFromInt(10), decimal.NewFromInt(300), 1, nil)
		require.NoError(t, err)

		_, err = handler.Handle(context.Background(), query)
		require.Error(t, err)
	})

	t.Run("not constructed", func(t *testing.T) {
		_, err := handler.Handle(context.Background(), queries.QuoteTariffQuery{})
		assert.ErrorIs(t, err, queries.ErrQuoteTariffQueryIsNotConstructed)
	})
}
