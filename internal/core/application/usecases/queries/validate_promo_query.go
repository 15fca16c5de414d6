// Package queries contains read-only operations over the storage. Handlers
// run raw SQL on the database connection and return plain response structs;
// they never load full aggregates.
package queries

import (
	"errors"

	"fiesta/internal/core/domain/model/promo"
	"fiesta/internal/pkg/guard"
)

var (
	ErrValidatePromoQueryIsNotConstructed = errors.New(
		"ValidatePromoQuery must be created via NewValidatePromoQuery constructor",
	)
	ErrPromoCodeIsRequired = errors.New("promo code is required")
)

// ValidatePromoQuery checks whether a promo code can currently be applied.
// The code is matched case-insensitively.
type ValidatePromoQuery struct {
	code string

	guard guard.ConstructorGuard
}

// NewValidatePromoQuery creates a promo validation query. The code is
// normalized to its canonical uppercase form.
func NewValidatePromoQuery(code string) (ValidatePromoQuery, error) {
	normalized := promo.NormalizeCode(code)
	if normalized == "" {
		return ValidatePromoQuery{}, ErrPromoCodeIsRequired
	}

	return ValidatePromoQuery{
		code:  normalized,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ValidatePromoQuery) Validate() error {
	return q.guard.Validate(ErrValidatePromoQueryIsNotConstructed)
}

// Code returns the normalized promo code.
func (q ValidatePromoQuery) Code() string {
	return q.code
}

// ValidatePromoQueryResponse carries the discount for a redeemable promo.
type ValidatePromoQueryResponse struct {
	Code            string
	DiscountPercent int
}
