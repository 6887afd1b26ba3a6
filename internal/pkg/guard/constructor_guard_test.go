package guard_test

import (
	"errors"
	"testing"

	"freight/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errQuoteNotConstructed = errors.New("Quote must be created via NewQuote")

type quote struct {
	amount int
	guard  guard.ConstructorGuard
}

func newQuote(amount int) quote {
	return quote{amount: amount, guard: guard.NewConstructorGuard()}
}

func (q quote) Validate() error {
	return q.guard.Validate(errQuoteNotConstructed)
}

func TestConstructorGuard(t *testing.T) {
	t.Run("constructed guard validates", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errQuoteNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero guard returns the given error", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, errQuoteNotConstructed, g.Validate(errQuoteNotConstructed))
	})

	t.Run("zero guard falls back to the default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, guard.ErrDefaultConstructorGuard, g.Validate(nil))
	})

	t.Run("embedded guard separates constructed values from literals", func(t *testing.T) {
		require.NoError(t, newQuote(15000).Validate())

		literal := quote{amount: 15000}
		require.ErrorIs(t, literal.Validate(), errQuoteNotConstructed)
	})
}
