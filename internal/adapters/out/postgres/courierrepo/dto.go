// Package courierrepo persists courier aggregates in the couriers table.
package courierrepo

import (
	"time"

	"fiesta/internal/core/domain/model/courier"
)

// CourierDTO is the database representation of a courier aggregate. The chat
// and channel addresses are stored as plain chat ids; 0 means absent.
type CourierDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"size:255"`
	ChatID    int64     `gorm:"index"`
	ChannelID int64     `gorm:"index"`
	IsActive  bool      `gorm:"index"`
	CreatedAt time.Time ``
}

// TableName maps the DTO to the couriers table.
func (CourierDTO) TableName() string {
	return "couriers"
}

func fromDomain(aggregate *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:        aggregate.ID(),
		Name:      aggregate.Name(),
		ChatID:    aggregate.ChatID(),
		ChannelID: aggregate.ChannelID(),
		IsActive:  aggregate.IsActive(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	return courier.RestoreCourier(dto.ID, dto.Name, dto.ChatID, dto.ChannelID, dto.IsActive, dto.CreatedAt)
}
