package queries_test

import (
	"testing"

	"fiesta/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatePromoQuery(t *testing.T) {
	t.Run("normalizes_code_to_uppercase", func(t *testing.T) {
		query, err := queries.NewValidatePromoQuery("  fiesta20 ")
		require.NoError(t, err)
		assert.Equal(t, "FIESTA20", query.Code())
		assert.NoError(t, query.Validate())
	})

	t.Run("rejects_blank_code", func(t *testing.T) {
		_, err := queries.NewValidatePromoQuery("   ")
		assert.ErrorIs(t, err, queries.ErrPromoCodeIsRequired)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var query queries.ValidatePromoQuery
		assert.ErrorIs(t, query.Validate(), queries.ErrValidatePromoQueryIsNotConstructed)
	})
}
