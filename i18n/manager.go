package i18n

import (
	"context"
	"log/slog"
	"sync"

	"github.com/fwojciec/sitesearch"
)

var _ sitesearch.Translator = (*Manager)(nil)

// Manager tracks the active display language and persists the user's choice.
type Manager struct {
	catalog *Catalog
	store   sitesearch.PreferenceStore
	logger  *slog.Logger

	mu       sync.RWMutex
	lang     string
	onChange []func(lang string)
}

// NewManager returns a manager starting in the catalog's default language.
// A nil store disables persistence.
func NewManager(catalog *Catalog, store sitesearch.PreferenceStore, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Manager{
		catalog: catalog,
		store:   store,
		logger:  logger,
		lang:    catalog.Default(),
	}
}

// Init selects the starting language: the stored preference when it is
// supported, otherwise the best match for browserLanguage, otherwise the
// default language. Store failures are logged and skipped.
func (m *Manager) Init(ctx context.Context, browserLanguage string) string {
	lang := m.catalog.Default()

	if stored, ok := m.storedLanguage(ctx); ok {
		lang = stored
	} else if match := MatchLanguage(browserLanguage, m.catalog.Languages()); match != "" {
		lang = match
	}

	m.mu.Lock()
	m.lang = lang
	m.mu.Unlock()

	m.logger.Debug("language selected", "lang", lang)
	return lang
}

func (m *Manager) storedLanguage(ctx context.Context) (string, bool) {
	if m.store == nil {
		return "", false
	}
	v, err := m.store.GetPreference(ctx, sitesearch.LanguagePreferenceKey)
	if err != nil {
		if sitesearch.ErrorCode(err) != sitesearch.ENOTFOUND {
			m.logger.Warn("reading language preference failed", "error", err)
		}
		return "", false
	}
	if !m.catalog.Has(v) {
		return "", false
	}
	return v, true
}

// SetLanguage switches the display language, persists it and notifies
// change listeners. Unsupported codes return EINVALID and change nothing.
func (m *Manager) SetLanguage(ctx context.Context, lang string) error {
	if !m.catalog.Has(lang) {
		return sitesearch.Errorf(sitesearch.EINVALID, "unsupported language %q", lang)
	}

	m.mu.Lock()
	m.lang = lang
	listeners := append([]func(string){}, m.onChange...)
	m.mu.Unlock()

	var err error
	if m.store != nil {
		err = m.store.SetPreference(ctx, sitesearch.LanguagePreferenceKey, lang)
	}

	for _, fn := range listeners {
		fn(lang)
	}
	return err
}

// OnChange registers fn to run after every language switch.
func (m *Manager) OnChange(fn func(lang string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChange = append(m.onChange, fn)
}

// Language returns the active language code.
func (m *Manager) Language() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lang
}

// Translate returns the text for key in the active language,
// or key itself when there is no entry.
func (m *Manager) Translate(key string) string {
	return m.Dictionary().Translate(key)
}

// Dictionary returns a snapshot translator for the active language.
func (m *Manager) Dictionary() *Dictionary {
	return m.catalog.Dictionary(m.Language())
}

// Catalog returns the manager's catalog.
func (m *Manager) Catalog() *Catalog {
	return m.catalog
}
