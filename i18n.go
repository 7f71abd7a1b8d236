package sitesearch

import "context"

// LanguagePreferenceKey is the persisted key holding the selected language code.
const LanguagePreferenceKey = "language"

// Translator resolves translation keys for the active display language.
type Translator interface {
	// Translate returns the text for key in the active language.
	// Returns key itself when no translation exists.
	Translate(key string) string

	// Language returns the active language code.
	Language() string
}

// PreferenceStore persists user preferences across sessions.
type PreferenceStore interface {
	// GetPreference returns the stored value for key.
	// Returns ENOTFOUND if nothing is stored.
	GetPreference(ctx context.Context, key string) (string, error)

	// SetPreference stores value under key, replacing any previous value.
	SetPreference(ctx context.Context, key, value string) error
}

// DisplayText returns the text of a fragment in the active language.
// The translation is used only when it is non-empty and differs from the
// key; otherwise the fragment's stored text is returned.
func DisplayText(f Fragment, tr Translator) string {
	if f.TranslationKey == "" || tr == nil {
		return f.Text
	}
	if t := tr.Translate(f.TranslationKey); t != "" && t != f.TranslationKey {
		return t
	}
	return f.Text
}

// TranslateOr returns the translation of key, or fallback when the
// translator is nil or has no entry for key.
func TranslateOr(tr Translator, key, fallback string) string {
	if tr == nil {
		return fallback
	}
	if t := tr.Translate(key); t != "" && t != key {
		return t
	}
	return fallback
}

// LanguageOf returns the active language of tr, or DefaultLanguage when tr is nil.
func LanguageOf(tr Translator) string {
	if tr == nil {
		return DefaultLanguage
	}
	return tr.Language()
}
