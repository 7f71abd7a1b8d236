package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/sitesearch"
)

var _ sitesearch.PreferenceStore = (*LoggingPreferenceStore)(nil)

// LoggingPreferenceStore wraps a PreferenceStore with debug logging.
type LoggingPreferenceStore struct {
	next   sitesearch.PreferenceStore
	logger *slog.Logger
}

// NewLoggingPreferenceStore creates a new LoggingPreferenceStore.
func NewLoggingPreferenceStore(next sitesearch.PreferenceStore, logger *slog.Logger) *LoggingPreferenceStore {
	return &LoggingPreferenceStore{next: next, logger: logger}
}

func (s *LoggingPreferenceStore) GetPreference(ctx context.Context, key string) (value string, err error) {
	defer func() {
		s.logger.Debug("get preference", "key", key, "value", value, "err", err)
	}()
	return s.next.GetPreference(ctx, key)
}

func (s *LoggingPreferenceStore) SetPreference(ctx context.Context, key, value string) (err error) {
	defer func() {
		s.logger.Debug("set preference", "key", key, "value", value, "err", err)
	}()
	return s.next.SetPreference(ctx, key, value)
}
