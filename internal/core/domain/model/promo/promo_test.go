package promo_test

import (
	"testing"
	"time"

	"fiesta/internal/core/domain/model/promo"
	"fiesta/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestNewPromo(t *testing.T) {
	t.Run("normalizes_code_to_uppercase", func(t *testing.T) {
		p, err := promo.NewPromo("  fiesta20 ", 20, nil, nil)
		require.NoError(t, err)

		require.NoError(t, p.Validate())
		assert.Equal(t, "FIESTA20", p.Code())
		assert.True(t, p.IsActive())
		assert.Zero(t, p.UsedCount())
	})

	t.Run("requires_code", func(t *testing.T) {
		_, err := promo.NewPromo("   ", 20, nil, nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_discount_outside_1_100", func(t *testing.T) {
		for _, percent := range []int{0, -5, 101} {
			_, err := promo.NewPromo("FIESTA20", percent, nil, nil)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, "percent %d", percent)
		}
	})

	t.Run("rejects_non_positive_usage_limit", func(t *testing.T) {
		_, err := promo.NewPromo("FIESTA20", 20, nil, intPtr(0))
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestPromo_CheckRedeemable(t *testing.T) {
	now := time.Now().UTC()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	t.Run("active_unlimited_promo_is_redeemable", func(t *testing.T) {
		p, err := promo.NewPromo("FIESTA20", 20, nil, nil)
		require.NoError(t, err)
		require.NoError(t, p.CheckRedeemable(now))
	})

	t.Run("inactive_promo_is_rejected", func(t *testing.T) {
		p, err := promo.RestorePromo(1, "FIESTA20", 20, nil, nil, 0, false, past)
		require.NoError(t, err)
		require.ErrorIs(t, p.CheckRedeemable(now), promo.ErrPromoInactive)
	})

	t.Run("expired_promo_is_rejected", func(t *testing.T) {
		p, err := promo.RestorePromo(1, "FIESTA20", 20, &past, nil, 0, true, past)
		require.NoError(t, err)
		require.ErrorIs(t, p.CheckRedeemable(now), promo.ErrPromoExpired)
	})

	t.Run("future_expiry_is_redeemable", func(t *testing.T) {
		p, err := promo.RestorePromo(1, "FIESTA20", 20, &future, nil, 0, true, past)
		require.NoError(t, err)
		require.NoError(t, p.CheckRedeemable(now))
	})

	t.Run("exhausted_promo_is_rejected", func(t *testing.T) {
		p, err := promo.RestorePromo(1, "FIESTA20", 20, nil, intPtr(3), 3, true, past)
		require.NoError(t, err)
		require.ErrorIs(t, p.CheckRedeemable(now), promo.ErrPromoExhausted)
	})

	t.Run("inactive_wins_over_expired_and_exhausted", func(t *testing.T) {
		p, err := promo.RestorePromo(1, "FIESTA20", 20, &past, intPtr(1), 1, false, past)
		require.NoError(t, err)
		require.ErrorIs(t, p.CheckRedeemable(now), promo.ErrPromoInactive)
	})
}

func TestGenerateCode(t *testing.T) {
	seen := map[string]bool{}
	for range 100 {
		code := promo.GenerateCode(promo.GeneratedCodeLength)
		require.Len(t, code, promo.GeneratedCodeLength)
		assert.Regexp(t, `^[0-9A-Z]+$`, code)
		seen[code] = true
	}
	// 100 draws from 36^8 values colliding would point at a broken generator.
	assert.Len(t, seen, 100)
}

func TestPromo_SetID(t *testing.T) {
	p, err := promo.NewPromo("FIESTA20", 20, nil, nil)
	require.NoError(t, err)

	require.NoError(t, p.SetID(7))
	assert.Equal(t, int64(7), p.ID())
	require.Error(t, p.SetID(8))
}

func TestPromo_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var p promo.Promo
		require.ErrorIs(t, p.Validate(), promo.ErrPromoIsNotConstructed)
	})
}
