package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fwojciec/sitesearch"
)

// Compile-time interface verification.
var _ sitesearch.PreferenceStore = (*PreferenceService)(nil)

// PreferenceService implements sitesearch.PreferenceStore using SQLite.
type PreferenceService struct {
	db  *DB
	now func() time.Time
}

// NewPreferenceService creates a new PreferenceService.
func NewPreferenceService(db *DB) *PreferenceService {
	return &PreferenceService{db: db, now: time.Now}
}

// GetPreference returns the value stored under key.
func (s *PreferenceService) GetPreference(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `
		SELECT value FROM preferences WHERE key = ?
	`, key).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return "", sitesearch.Errorf(sitesearch.ENOTFOUND, "preference %q not set", key)
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// SetPreference stores value under key, replacing any previous value.
func (s *PreferenceService) SetPreference(ctx context.Context, key, value string) error {
	if key == "" {
		return sitesearch.Errorf(sitesearch.EINVALID, "preference key required")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, s.now().UTC().Format(time.RFC3339))
	return err
}

// UpdatedAt returns when key was last written.
func (s *PreferenceService) UpdatedAt(ctx context.Context, key string) (time.Time, error) {
	var updatedAt string
	err := s.db.QueryRowContext(ctx, `
		SELECT updated_at FROM preferences WHERE key = ?
	`, key).Scan(&updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, sitesearch.Errorf(sitesearch.ENOTFOUND, "preference %q not set", key)
	}
	if err != nil {
		return time.Time{}, err
	}

	t, err := time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}
	return t, nil
}

// DeletePreference removes key. Deleting a missing key is not an error.
func (s *PreferenceService) DeletePreference(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM preferences WHERE key = ?`, key)
	return err
}
