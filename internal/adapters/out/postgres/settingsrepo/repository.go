// Package settingsrepo persists runtime key/value settings (app_settings
// table) and exposes the effective-settings provider used by handlers.
package settingsrepo

import (
	"context"
	"errors"
	"strconv"

	"fiesta/internal/core/ports"
	"fiesta/internal/pkg/errs"

	"gorm.io/gorm"
)

// SettingDTO is one runtime setting row.
type SettingDTO struct {
	Key   string `gorm:"primaryKey;size:64"`
	Value string `gorm:"size:255"`
}

// TableName maps the DTO to the app_settings table.
func (SettingDTO) TableName() string {
	return "app_settings"
}

// GormSettingsRepository implements ports.SettingsRepository using GORM.
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GORM settings repository.
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// Get retrieves a setting value by key.
func (r *GormSettingsRepository) Get(ctx context.Context, key string) (string, error) {
	var dto SettingDTO
	if err := r.db.WithContext(ctx).First(&dto, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", errs.NewObjectNotFoundError("setting", key)
		}
		return "", err
	}

	return dto.Value, nil
}

// Set upserts a setting value.
func (r *GormSettingsRepository) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errs.NewValueIsRequiredError("key")
	}

	return r.db.WithContext(ctx).
		Exec(`
			INSERT INTO app_settings (key, value) VALUES (?, ?)
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
		`, key, value).Error
}

// Provider resolves effective settings: the stored override when present,
// the configured default otherwise. It satisfies ports.SettingsProvider.
type Provider struct {
	repo               ports.SettingsRepository
	defaultShopChannel int64
}

// NewProvider creates a settings provider with the configured defaults.
func NewProvider(repo ports.SettingsRepository, defaultShopChannel int64) *Provider {
	return &Provider{
		repo:               repo,
		defaultShopChannel: defaultShopChannel,
	}
}

// ShopChannelID returns the admin order channel: the stored override when
// set and parseable, the configured default otherwise.
func (p *Provider) ShopChannelID(ctx context.Context) (int64, error) {
	raw, err := p.repo.Get(ctx, ports.SettingShopChannelID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return p.defaultShopChannel, nil
		}
		return 0, err
	}

	channelID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("shop_channel_id", err)
	}

	return channelID, nil
}
