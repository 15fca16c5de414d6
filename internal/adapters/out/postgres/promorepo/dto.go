// Package promorepo persists promo aggregates in the promos table.
package promorepo

import (
	"time"

	"fiesta/internal/core/domain/model/promo"
)

// PromoDTO is the database representation of a promo aggregate.
type PromoDTO struct {
	ID              int64      `gorm:"primaryKey;autoIncrement"`
	Code            string     `gorm:"size:32;uniqueIndex"`
	DiscountPercent int        ``
	ExpiresAt       *time.Time ``
	UsageLimit      *int       ``
	UsedCount       int        ``
	IsActive        bool       ``
	CreatedAt       time.Time  ``
}

// TableName maps the DTO to the promos table.
func (PromoDTO) TableName() string {
	return "promos"
}

func fromDomain(aggregate *promo.Promo) PromoDTO {
	return PromoDTO{
		ID:              aggregate.ID(),
		Code:            aggregate.Code(),
		DiscountPercent: aggregate.DiscountPercent(),
		ExpiresAt:       aggregate.ExpiresAt(),
		UsageLimit:      aggregate.UsageLimit(),
		UsedCount:       aggregate.UsedCount(),
		IsActive:        aggregate.IsActive(),
		CreatedAt:       aggregate.CreatedAt(),
	}
}

func toDomain(dto PromoDTO) (*promo.Promo, error) {
	return promo.RestorePromo(
		dto.ID,
		dto.Code,
		dto.DiscountPercent,
		dto.ExpiresAt,
		dto.UsageLimit,
		dto.UsedCount,
		dto.IsActive,
		dto.CreatedAt,
	)
}
