package database

import (
	"context"

	"github.com/akyairhashvil/teamboard/internal/config"
)

// SettingCompletedStatus is the settings key holding the status id that
// counts a task as done for progress aggregation.
const SettingCompletedStatus = "completed_status"

// GetSetting returns a settings value and whether it was present.
func (d *Database) GetSetting(ctx context.Context, key string) (string, bool) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	var value *string
	err := d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil || value == nil {
		return "", false
	}
	return *value, true
}

// SetSetting upserts a settings value.
func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	_, err := d.DB.ExecContext(ctx,
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	return err
}

// CompletedStatus returns the configured completed status id, falling
// back to the default when unset.
func (d *Database) CompletedStatus(ctx context.Context) string {
	if v, ok := d.GetSetting(ctx, SettingCompletedStatus); ok && v != "" {
		return v
	}
	return config.DefaultCompletedStatus
}
