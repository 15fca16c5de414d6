package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fiesta/internal/core/domain/model/promo"
	"fiesta/internal/pkg/errs"

	"gorm.io/gorm"
)

// ValidatePromoQueryHandler resolves a promo code against the promos table
// and checks redeemability at query time.
//
// Every rejection reason (unknown code, switched off, expired, exhausted)
// collapses into a single not-found error so the ordering surface cannot be
// used to probe which codes exist.
type ValidatePromoQueryHandler struct {
	db *gorm.DB
}

// NewValidatePromoQueryHandler creates a handler for promo validation.
func NewValidatePromoQueryHandler(db *gorm.DB) ValidatePromoQueryHandler {
	return ValidatePromoQueryHandler{db: db}
}

// Handle executes the validation.
func (h ValidatePromoQueryHandler) Handle(ctx context.Context, query ValidatePromoQuery) (ValidatePromoQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ValidatePromoQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			discount_percent,
			expires_at,
			usage_limit,
			used_count,
			is_active
		FROM promos
		WHERE code = ?
	`, query.Code()).Row()

	var (
		discountPercent int
		expiresAt       *time.Time
		usageLimit      *int
		usedCount       int
		isActive        bool
	)
	if err := row.Scan(&discountPercent, &expiresAt, &usageLimit, &usedCount, &isActive); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, gorm.ErrRecordNotFound) {
			return ValidatePromoQueryResponse{}, errs.NewObjectNotFoundError("promoCode", query.Code())
		}
		return ValidatePromoQueryResponse{}, err
	}

	checked, err := promo.RestorePromo(0, query.Code(), discountPercent, expiresAt, usageLimit, usedCount, isActive, time.Time{})
	if err != nil {
		return ValidatePromoQueryResponse{}, err
	}
	if err = checked.CheckRedeemable(time.Now().UTC()); err != nil {
		return ValidatePromoQueryResponse{}, errs.NewObjectNotFoundErrorWithCause("promoCode", query.Code(), err)
	}

	return ValidatePromoQueryResponse{
		Code:            query.Code(),
		DiscountPercent: discountPercent,
	}, nil
}
