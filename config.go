package sitesearch

import "time"

// Configuration defaults.
const (
	DefaultConcurrency = 4
	DefaultTimeout     = 10 * time.Second
)

// SiteConfig describes the site being indexed.
type SiteConfig struct {
	// BaseURL is prepended to page URLs when fetching over HTTP.
	BaseURL string `koanf:"base_url"`

	// Pages lists every page of the site in display order.
	Pages []PageDescriptor `koanf:"pages"`

	DefaultLanguage   string        `koanf:"default_language"`
	Debounce          time.Duration `koanf:"debounce"`
	Highlight         time.Duration `koanf:"highlight"`
	Concurrency       int           `koanf:"concurrency"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	Timeout           time.Duration `koanf:"timeout"`
}

// DefaultSiteConfig returns the configuration of the personal site.
func DefaultSiteConfig() *SiteConfig {
	return &SiteConfig{
		Pages: []PageDescriptor{
			{URL: "index.html", Title: "Inicio", TitleAlt: "Home"},
			{URL: "aficiones.html", Title: "Aficiones", TitleAlt: "Hobbies"},
			{URL: "portfolio.html", Title: "Portfolio", TitleAlt: "Portfolio"},
			{URL: "contacto.html", Title: "Contacto", TitleAlt: "Contact"},
		},
		DefaultLanguage: DefaultLanguage,
		Debounce:        DefaultDebounce,
		Highlight:       DefaultHighlightDuration,
		Concurrency:     DefaultConcurrency,
		Timeout:         DefaultTimeout,
	}
}

// Validate returns an error if the configuration contains invalid fields.
func (c *SiteConfig) Validate() error {
	if len(c.Pages) == 0 {
		return Errorf(EINVALID, "at least one page required")
	}
	seen := make(map[string]bool, len(c.Pages))
	for i, p := range c.Pages {
		if p.URL == "" {
			return Errorf(EINVALID, "page %d: url required", i)
		}
		if seen[p.URL] {
			return Errorf(EINVALID, "page %q listed twice", p.URL)
		}
		seen[p.URL] = true
	}
	if c.DefaultLanguage == "" {
		return Errorf(EINVALID, "default_language required")
	}
	if c.Debounce < 0 || c.Highlight < 0 || c.Timeout < 0 {
		return Errorf(EINVALID, "durations must be non-negative")
	}
	if c.Concurrency < 0 {
		return Errorf(EINVALID, "concurrency must be non-negative")
	}
	if c.RequestsPerSecond < 0 {
		return Errorf(EINVALID, "requests_per_second must be non-negative")
	}
	return nil
}

// PageURLs returns the URL of every configured page.
func (c *SiteConfig) PageURLs() []string {
	urls := make([]string, len(c.Pages))
	for i, p := range c.Pages {
		urls[i] = p.URL
	}
	return urls
}
