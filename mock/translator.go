package mock

import "github.com/fwojciec/sitesearch"

var _ sitesearch.Translator = (*Translator)(nil)

// Translator is a mock implementation of sitesearch.Translator.
type Translator struct {
	TranslateFn func(key string) string
	LanguageFn  func() string
}

func (t *Translator) Translate(key string) string {
	return t.TranslateFn(key)
}

func (t *Translator) Language() string {
	return t.LanguageFn()
}
