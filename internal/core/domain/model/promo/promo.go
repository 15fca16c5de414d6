package promo

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
	"time"

	"fiesta/internal/pkg/errs"
	"fiesta/internal/pkg/guard"
)

// GeneratedCodeLength is the length of system-generated promo codes (for
// example referral rewards).
const GeneratedCodeLength = 8

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var (
	// ErrPromoIsNotConstructed is returned when using an improperly initialized Promo.
	ErrPromoIsNotConstructed = errors.New("Promo must be created via NewPromo or RestorePromo")
	// ErrPromoInactive marks a promo that was switched off by an admin.
	ErrPromoInactive = errors.New("promo is inactive")
	// ErrPromoExpired marks a promo whose expiry has passed.
	ErrPromoExpired = errors.New("promo is expired")
	// ErrPromoExhausted marks a promo whose usage cap is reached.
	ErrPromoExhausted = errors.New("promo usage limit reached")
)

// Promo is a discount code. The used count only ever grows; consumption is
// performed by the storage layer as a conditional increment so concurrent
// orders cannot overrun the cap.
type Promo struct {
	id              int64
	code            string
	discountPercent int
	expiresAt       *time.Time
	usageLimit      *int
	usedCount       int
	isActive        bool
	createdAt       time.Time

	guard guard.ConstructorGuard
}

// NewPromo creates an active promo with the code normalized to uppercase.
func NewPromo(code string, discountPercent int, expiresAt *time.Time, usageLimit *int) (*Promo, error) {
	normalized := NormalizeCode(code)
	if normalized == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}
	if discountPercent < 1 || discountPercent > 100 {
		return nil, errs.NewValueIsOutOfRangeError("discountPercent", discountPercent, 1, 100)
	}
	if usageLimit != nil && *usageLimit <= 0 {
		return nil, errs.NewValueIsRequiredError("usageLimit")
	}

	return &Promo{
		code:            normalized,
		discountPercent: discountPercent,
		expiresAt:       expiresAt,
		usageLimit:      usageLimit,
		isActive:        true,
		createdAt:       time.Now().UTC(),
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// RestorePromo reconstructs a promo aggregate from persistent storage.
func RestorePromo(
	id int64,
	code string,
	discountPercent int,
	expiresAt *time.Time,
	usageLimit *int,
	usedCount int,
	isActive bool,
	createdAt time.Time,
) (*Promo, error) {
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	return &Promo{
		id:              id,
		code:            code,
		discountPercent: discountPercent,
		expiresAt:       expiresAt,
		usageLimit:      usageLimit,
		usedCount:       usedCount,
		isActive:        isActive,
		createdAt:       createdAt,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// NormalizeCode maps a user-supplied code to its canonical stored form:
// trimmed and uppercased. "fiesta20" and "FIESTA20" are the same code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// GenerateCode produces a random uppercase-alphanumeric code of the given
// length. Collision probability at these lengths is negligible; the unique
// index on the promos table is the final guard.
func GenerateCode(length int) string {
	var b strings.Builder
	for range length {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
		if err != nil {
			// crypto/rand only fails when the platform's entropy source is
			// broken, which is not a recoverable condition here.
			panic(err)
		}
		b.WriteByte(codeAlphabet[n.Int64()])
	}
	return b.String()
}

// Validate ensures the Promo instance was properly constructed.
func (p *Promo) Validate() error {
	if p == nil {
		return ErrPromoIsNotConstructed
	}
	return p.guard.Validate(ErrPromoIsNotConstructed)
}

// ID returns the storage-assigned numeric id.
func (p *Promo) ID() int64 {
	return p.id
}

// SetID records the storage-assigned id after the first insert.
func (p *Promo) SetID(id int64) error {
	if p.id != 0 {
		return errs.NewValueIsInvalidError("promo id is already assigned")
	}
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	p.id = id
	return nil
}

// Code returns the normalized code.
func (p *Promo) Code() string {
	return p.code
}

// DiscountPercent returns the discount percentage.
func (p *Promo) DiscountPercent() int {
	return p.discountPercent
}

// ExpiresAt returns the optional expiry.
func (p *Promo) ExpiresAt() *time.Time {
	return p.expiresAt
}

// UsageLimit returns the optional usage cap.
func (p *Promo) UsageLimit() *int {
	return p.usageLimit
}

// UsedCount returns how many times the promo has been consumed.
func (p *Promo) UsedCount() int {
	return p.usedCount
}

// IsActive reports whether the promo is switched on.
func (p *Promo) IsActive() bool {
	return p.isActive
}

// CreatedAt returns the creation timestamp.
func (p *Promo) CreatedAt() time.Time {
	return p.createdAt
}

// CheckRedeemable verifies the promo can be applied at the given instant.
// The checks run in a fixed order: inactive, expired, exhausted. Callers
// surface every failure as not-found to avoid leaking which codes exist.
func (p *Promo) CheckRedeemable(now time.Time) error {
	if !p.isActive {
		return ErrPromoInactive
	}
	if p.expiresAt != nil && p.expiresAt.Before(now) {
		return ErrPromoExpired
	}
	if p.usageLimit != nil && p.usedCount >= *p.usageLimit {
		return ErrPromoExhausted
	}
	return nil
}
