package ports

import "context"

// Well-known settings keys.
const (
	// SettingShopChannelID overrides the admin order channel id at runtime.
	SettingShopChannelID = "shop_channel_id"
)

// SettingsRepository is the persistence contract for runtime key/value
// settings. Unknown keys return errs.ErrObjectNotFound.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// SettingsProvider resolves effective runtime settings: a stored override
// when present, otherwise the configured default. Handlers depend on this
// instead of reading configuration globals.
type SettingsProvider interface {
	// ShopChannelID returns the admin channel that receives order cards.
	ShopChannelID(ctx context.Context) (int64, error)
}
