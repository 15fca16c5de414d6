package promorepo

import (
	"context"
	"errors"

	"fiesta/internal/core/domain/model/promo"
	"fiesta/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPromoRepository implements ports.PromoRepository using GORM.
type GormPromoRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker records aggregates modified within the unit of work.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormPromoRepository creates a new GORM promo repository.
func NewGormPromoRepository(db *gorm.DB, tracker aggregateTracker) *GormPromoRepository {
	return &GormPromoRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new promo and pushes the generated id back onto the aggregate.
func (r *GormPromoRepository) Add(ctx context.Context, aggregate *promo.Promo) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := aggregate.SetID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByCode retrieves a promo by its normalized code.
func (r *GormPromoRepository) GetByCode(ctx context.Context, code string) (*promo.Promo, error) {
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}

	var dto PromoDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("promoCode", code)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ConsumeUsage increments used_count with the cap check folded into the
// UPDATE itself. Two concurrent orders racing for the last slot hit the same
// row; the condition makes exactly one of them win.
func (r *GormPromoRepository) ConsumeUsage(ctx context.Context, code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE promos
		SET used_count = used_count + 1
		WHERE code = ?
		  AND is_active
		  AND (usage_limit IS NULL OR used_count < usage_limit)
	`, code)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return promo.ErrPromoExhausted
	}

	return nil
}
