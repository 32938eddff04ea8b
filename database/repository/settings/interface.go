package settingsRepo

import "context"

// SettingsRepository stores global platform settings. The commission rate is
// the one that matters: its value at payment time is stamped onto the
// transaction and later changes never touch historical records.
type SettingsRepository interface {
	// GetCommissionRate returns the current platform commission rate.
	GetCommissionRate(ctx context.Context) (float64, error)
	// SetCommissionRate stores a new platform commission rate.
	SetCommissionRate(ctx context.Context, rate float64) error
}
