package queries_test

import (
	"testing"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/services"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckTransitionQuery_RequiresBothStatuses(t *testing.T) {
	_, err := queries.NewCheckTransitionQuery("", " ")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "from")
	assert.Contains(t, err.Error(), "to")
}

func TestCheckTransitionQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.CheckTransitionQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrCheckTransitionQueryIsNotConstructed)
}

func TestCheckTransitionQueryHandler_Handle(t *testing.T) {
	handler := queries.NewCheckTransitionQueryHandler(services.NewTransitionValidator())

	tests := []struct {
		from, to string
		legal    bool
	}{
		{"EN_ATTENTE", "EN_COURS", true},
		{"EN_ATTENTE", "ANNULE", true},
		{"EN_COURS", "PERDU", true},
		{"ARRIVE", "RECUPERE", true},
		{"RECUPERE", "ARCHIVE", true},
		{"EN_ATTENTE", "PERDU", false},
		{"RECUPERE", "PERDU", false},
		{"ARCHIVE", "EN_ATTENTE", false},
		{"EN_COURS", "EN_COURS", false},
		{"INCONNU", "EN_COURS", false},
		{"EN_ATTENTE", "INCONNU", false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			query, err := queries.NewCheckTransitionQuery(tt.from, tt.to)
			require.NoError(t, err)

			resp, err := handler.Handle(query)
			require.NoError(t, err)
			assert.Equal(t, tt.legal, resp.Legal)
			assert.Equal(t, tt.from, resp.From)
			assert.Equal(t, tt.to, resp.To)
		})
	}
}
