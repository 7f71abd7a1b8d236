package koanf_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/koanf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sitesearch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// Environment overrides mutate process state, so these tests do not run
// in parallel.

func TestLoadSiteConfig(t *testing.T) {
	t.Run("uses defaults without a file", func(t *testing.T) {
		cfg, err := koanf.LoadSiteConfig(filepath.Join(t.TempDir(), "missing.yaml"))

		require.NoError(t, err)
		assert.Equal(t, sitesearch.DefaultSiteConfig(), cfg)
	})

	t.Run("reads pages and durations from yaml", func(t *testing.T) {
		path := writeConfig(t, `
base_url: https://example.com/
pages:
  - url: index.html
    title: Inicio
    title_alt: Home
  - url: blog.html
    title: Blog
debounce: 250ms
concurrency: 2
requests_per_second: 5
`)

		cfg, err := koanf.LoadSiteConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/", cfg.BaseURL)
		assert.Equal(t, []sitesearch.PageDescriptor{
			{URL: "index.html", Title: "Inicio", TitleAlt: "Home"},
			{URL: "blog.html", Title: "Blog"},
		}, cfg.Pages)
		assert.Equal(t, 250*time.Millisecond, cfg.Debounce)
		assert.Equal(t, 2, cfg.Concurrency)
		assert.Equal(t, 5.0, cfg.RequestsPerSecond)
		assert.Equal(t, sitesearch.DefaultHighlightDuration, cfg.Highlight)
		assert.Equal(t, sitesearch.DefaultTimeout, cfg.Timeout)
	})

	t.Run("overlays environment variables", func(t *testing.T) {
		t.Setenv("SITESEARCH_BASE_URL", "http://localhost:8080/")
		t.Setenv("SITESEARCH_CONCURRENCY", "8")
		t.Setenv("SITESEARCH_TIMEOUT", "3s")

		cfg, err := koanf.LoadSiteConfig("")

		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080/", cfg.BaseURL)
		assert.Equal(t, 8, cfg.Concurrency)
		assert.Equal(t, 3*time.Second, cfg.Timeout)
	})

	t.Run("rejects duplicate pages", func(t *testing.T) {
		path := writeConfig(t, `
pages:
  - url: index.html
  - url: index.html
`)

		_, err := koanf.LoadSiteConfig(path)

		assert.Equal(t, sitesearch.EINVALID, sitesearch.ErrorCode(err))
	})

	t.Run("returns an error for malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "pages: [\n")

		_, err := koanf.LoadSiteConfig(path)

		assert.Error(t, err)
	})
}
