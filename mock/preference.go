package mock

import (
	"context"

	"github.com/fwojciec/sitesearch"
)

var _ sitesearch.PreferenceStore = (*PreferenceStore)(nil)

// PreferenceStore is a mock implementation of sitesearch.PreferenceStore.
type PreferenceStore struct {
	GetPreferenceFn func(ctx context.Context, key string) (string, error)
	SetPreferenceFn func(ctx context.Context, key, value string) error
}

func (s *PreferenceStore) GetPreference(ctx context.Context, key string) (string, error) {
	return s.GetPreferenceFn(ctx, key)
}

func (s *PreferenceStore) SetPreference(ctx context.Context, key, value string) error {
	return s.SetPreferenceFn(ctx, key, value)
}
