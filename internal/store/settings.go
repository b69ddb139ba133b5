package store

import (
	"database/sql"
	"fmt"
)

// SetSetting upserts a single user-setting key/value pair.
func SetSetting(db DBExecutor, key, value string) error {
	if key == "" {
		return fmt.Errorf("store: key must be non-empty")
	}
	_, err := db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("store: set setting %q: %w", key, err)
	}
	return nil
}

// GetSetting returns the value stored for key, or ok=false if unset.
func GetSetting(db DBExecutor, key string) (string, bool, error) {
	var value string
	err := db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("store: get setting %q: %w", key, err)
	}
	return value, true, nil
}
