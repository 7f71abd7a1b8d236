package sitesearch_test

import (
	"testing"

	"github.com/fwojciec/sitesearch"
	"github.com/stretchr/testify/assert"
)

func TestPageDescriptor_DisplayTitle(t *testing.T) {
	t.Parallel()

	page := sitesearch.PageDescriptor{URL: "index.html", Title: "Inicio", TitleAlt: "Home"}

	t.Run("uses default title for default language", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Inicio", page.DisplayTitle(sitesearch.DefaultLanguage))
	})

	t.Run("uses alternate title for alternate language", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Home", page.DisplayTitle(sitesearch.AltLanguage))
	})

	t.Run("falls back to default title when alternate is empty", func(t *testing.T) {
		t.Parallel()

		p := sitesearch.PageDescriptor{URL: "portfolio.html", Title: "Portfolio"}

		assert.Equal(t, "Portfolio", p.DisplayTitle(sitesearch.AltLanguage))
	})

	t.Run("uses default title for unknown language", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Inicio", page.DisplayTitle("fr"))
	})
}

func TestCurrentPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "empty path", path: "", want: "index.html"},
		{name: "root", path: "/", want: "index.html"},
		{name: "directory", path: "/site/", want: "index.html"},
		{name: "file at root", path: "/contacto.html", want: "contacto.html"},
		{name: "nested file", path: "/site/aficiones.html", want: "aficiones.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, sitesearch.CurrentPage(tt.path))
		})
	}
}
