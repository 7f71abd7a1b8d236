package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements sitesearch.Converter at compile time.
var _ sitesearch.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts basic paragraph", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<p>Graduado y entusiasta.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "Graduado y entusiasta.")
	})

	t.Run("converts headings", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<h1>Sobre mí</h1><h2>Formación</h2><h3>Máster</h3>`)

		require.NoError(t, err)
		assert.Contains(t, md, "# Sobre mí")
		assert.Contains(t, md, "## Formación")
		assert.Contains(t, md, "### Máster")
	})

	t.Run("renders highlights as bold", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<p>Graduado y <mark>entusiasta</mark> de la ingeniería.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "Graduado y **entusiasta** de la ingeniería.")
	})

	t.Run("converts rendered results", func(t *testing.T) {
		t.Parallel()

		html := `<p><strong>2</strong> resultados encontrados en 1 páginas</p>` +
			`<ul><li><a href="index.html#graduado-0">Inicio</a>` +
			`<p>Graduado y <mark>entusiasta</mark></p>` +
			`<ul class="coincidencias"><li><a href="index.html#otro-1">Otro <mark>entusiasta</mark></a></li></ul>` +
			`</li></ul>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "**2** resultados encontrados en 1 páginas")
		assert.Contains(t, md, "[Inicio](index.html#graduado-0)")
		assert.Contains(t, md, "[Otro **entusiasta**](index.html#otro-1)")
	})

	t.Run("converts blockquotes", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<blockquote><p>Un gran compañero.</p></blockquote>`)

		require.NoError(t, err)
		assert.Contains(t, md, "> Un gran compañero.")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Titulación</th><th>Años</th></tr></thead>
<tbody><tr><td>Grado</td><td>2021 - 2025</td></tr></tbody>
</table>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		// Table cells may have padding for alignment, so check for content
		assert.Contains(t, md, "Titulación")
		assert.Contains(t, md, "2021 - 2025")
		assert.Contains(t, md, "|")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("  ")

		require.Error(t, err)
		assert.Equal(t, sitesearch.EINVALID, sitesearch.ErrorCode(err))
	})
}
