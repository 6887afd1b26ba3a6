package queries_test

import (
	"testing"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetRunLoadQuery(t *testing.T) {
	t.Run("should reject a zero run id", func(t *testing.T) {
		_, err := queries.NewGetRunLoadQuery(kernel.UUID{})
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should keep the run id", func(t *testing.T) {
		id := kernel.NewUUID()
		query, err := queries.NewGetRunLoadQuery(id)
		require.NoError(t, err)
		assert.Equal(t, id, query.RunID())
	})
}
