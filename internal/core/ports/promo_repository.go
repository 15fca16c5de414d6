package ports

import (
	"context"

	"fiesta/internal/core/domain/model/promo"
)

// PromoRepository defines the persistence contract for promo aggregates.
type PromoRepository interface {
	// Add persists a new promo aggregate and assigns its storage id.
	Add(ctx context.Context, aggregate *promo.Promo) error

	// GetByCode retrieves a promo by its normalized uppercase code.
	GetByCode(ctx context.Context, code string) (*promo.Promo, error)

	// ConsumeUsage atomically increments the promo's used count, but only
	// while the usage cap (if any) is not reached. Returns
	// promo.ErrPromoExhausted when the conditional update matches no row, so
	// two concurrent orders cannot both take the last slot.
	ConsumeUsage(ctx context.Context, code string) error
}
