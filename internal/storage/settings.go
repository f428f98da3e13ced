package storage

import (
	"context"
	"database/sql"
	"errors"
)

// Settings is the key/value settings store shared across domains.
// A missing key reads as the empty string.
type Settings struct {
	db *sql.DB
}

// NewSettings creates a settings store over the given database.
func NewSettings(db *sql.DB) *Settings {
	return &Settings{db: db}
}

func (s *Settings) Get(ctx context.Context, key string) (string, error) {
	var value sql.NullString
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value.String, nil
}

func (s *Settings) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings(key, value) VALUES(?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

// EnsureDefaults writes each default only when the key is absent, so user
// overrides survive restarts.
func (s *Settings) EnsureDefaults(ctx context.Context, defaults map[string]string) error {
	for key, value := range defaults {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO settings(key, value) VALUES(?, ?) ON CONFLICT(key) DO NOTHING`,
			key, value,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
