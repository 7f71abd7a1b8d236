// Package koanf loads the site configuration from a YAML file and
// SITESEARCH_* environment variables.
package koanf

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/fwojciec/sitesearch"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override, as in SITESEARCH_BASE_URL.
const EnvPrefix = "SITESEARCH_"

// LoadSiteConfig reads configuration from the YAML file at path, then
// overlays environment variable overrides. A missing file is not an error;
// anything left unset keeps its built-in default. The result is validated.
func LoadSiteConfig(path string) (*sitesearch.SiteConfig, error) {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// SITESEARCH_BASE_URL -> base_url, etc.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	cfg := &sitesearch.SiteConfig{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, sitesearch.Errorf(sitesearch.EINVALID, "invalid config: %v", err)
	}
	applyDefaults(k, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults fills every key the sources left unset.
func applyDefaults(k *koanf.Koanf, cfg *sitesearch.SiteConfig) {
	def := sitesearch.DefaultSiteConfig()
	if !k.Exists("pages") {
		cfg.Pages = def.Pages
	}
	if !k.Exists("default_language") {
		cfg.DefaultLanguage = def.DefaultLanguage
	}
	if !k.Exists("debounce") {
		cfg.Debounce = def.Debounce
	}
	if !k.Exists("highlight") {
		cfg.Highlight = def.Highlight
	}
	if !k.Exists("concurrency") {
		cfg.Concurrency = def.Concurrency
	}
	if !k.Exists("timeout") {
		cfg.Timeout = def.Timeout
	}
}
