// Package userrepo persists user aggregates in the users table.
package userrepo

import (
	"time"

	"fiesta/internal/core/domain/model/user"
)

// UserDTO is the database representation of a user aggregate.
type UserDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	TgID        int64     `gorm:"uniqueIndex"`
	Username    string    `gorm:"size:255"`
	FullName    string    `gorm:"size:255"`
	RefByUserID *int64    `gorm:"index"`
	PromoGiven  bool      ``
	JoinedAt    time.Time `gorm:"index"`
}

// TableName maps the DTO to the users table.
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:          aggregate.ID(),
		TgID:        aggregate.TgID(),
		Username:    aggregate.Username(),
		FullName:    aggregate.FullName(),
		RefByUserID: aggregate.RefByUserID(),
		PromoGiven:  aggregate.RewardGranted(),
		JoinedAt:    aggregate.JoinedAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	return user.RestoreUser(
		dto.ID,
		dto.TgID,
		dto.Username,
		dto.FullName,
		dto.RefByUserID,
		dto.PromoGiven,
		dto.JoinedAt,
	)
}
