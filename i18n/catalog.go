// Package i18n holds the translation dictionaries and the language manager.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/fwojciec/sitesearch"
	"gopkg.in/yaml.v3"
)

//go:embed dictionaries/*.yaml
var dictionaries embed.FS

var _ sitesearch.Translator = (*Dictionary)(nil)

// Dictionary maps translation keys to text in one language.
type Dictionary struct {
	lang    string
	entries map[string]string
}

// NewDictionary returns a dictionary for lang holding entries.
func NewDictionary(lang string, entries map[string]string) *Dictionary {
	return &Dictionary{lang: lang, entries: entries}
}

// Translate returns the text for key, or key itself when it has no entry
// or the entry is empty.
func (d *Dictionary) Translate(key string) string {
	if t := d.entries[key]; t != "" {
		return t
	}
	return key
}

// Language returns the dictionary's language code.
func (d *Dictionary) Language() string {
	return d.lang
}

// Len returns the number of entries.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Catalog is the immutable set of dictionaries, one per supported language,
// and the language used when no other choice applies.
type Catalog struct {
	dicts map[string]*Dictionary
	def   string
}

// NewCatalog returns a catalog of the embedded Spanish and English dictionaries.
func NewCatalog() (*Catalog, error) {
	return LoadCatalog(dictionaries, "dictionaries")
}

// LoadCatalog reads every <lang>.yaml file in dir of fsys.
// Each file is a flat mapping of translation key to text.
func LoadCatalog(fsys fs.FS, dir string) (*Catalog, error) {
	matches, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("listing dictionaries: %w", err)
	}
	if len(matches) == 0 {
		return nil, sitesearch.Errorf(sitesearch.ENOTFOUND, "no dictionaries in %s", dir)
	}

	c := &Catalog{dicts: make(map[string]*Dictionary, len(matches))}
	for _, name := range matches {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		var entries map[string]string
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		lang := strings.TrimSuffix(path.Base(name), ".yaml")
		d := NewDictionary(lang, entries)
		if d.Len() == 0 {
			return nil, sitesearch.Errorf(sitesearch.EINVALID, "dictionary %s has no entries", name)
		}
		c.dicts[lang] = d
	}

	c.def = sitesearch.DefaultLanguage
	if !c.Has(c.def) {
		c.def = c.Languages()[0]
	}
	return c, nil
}

// WithDefault returns a copy of the catalog whose default language is lang.
// Returns EINVALID when lang has no dictionary.
func (c *Catalog) WithDefault(lang string) (*Catalog, error) {
	if !c.Has(lang) {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "unsupported default language %q (available: %s)", lang, strings.Join(c.Languages(), ", "))
	}
	return &Catalog{dicts: c.dicts, def: lang}, nil
}

// Default returns the default language code.
func (c *Catalog) Default() string {
	return c.def
}

// Languages returns the supported language codes in sorted order.
func (c *Catalog) Languages() []string {
	langs := make([]string, 0, len(c.dicts))
	for lang := range c.dicts {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// Has reports whether lang is supported.
func (c *Catalog) Has(lang string) bool {
	_, ok := c.dicts[lang]
	return ok
}

// Dictionary returns the dictionary for lang.
// Unsupported languages fall back to the catalog's default language.
func (c *Catalog) Dictionary(lang string) *Dictionary {
	if d, ok := c.dicts[lang]; ok {
		return d
	}
	return c.dicts[c.def]
}
