package goquery_test

import (
	"testing"

	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Page implements sitesearch.DeepLinkTarget at compile time.
var _ sitesearch.DeepLinkTarget = (*goquery.Page)(nil)

func TestMaterializeAnchor(t *testing.T) {
	t.Parallel()

	t.Run("locates paragraph by synthesized anchor", func(t *testing.T) {
		t.Parallel()

		doc := mustDoc(t, indexHTML)
		fragment := sitesearch.Slugify("Graduado y entusiasta de la ingeniería de software.") + "-0"

		sel, ok := goquery.MaterializeAnchor(doc, fragment)

		require.True(t, ok)
		assert.Equal(t, "p", gqNodeName(sel))
		assert.Equal(t, "index.descripcion", attr(sel, "data-i18n"))
		assert.Equal(t, fragment, attr(sel, "id"))
	})

	t.Run("resolves anchors produced by the extractor", func(t *testing.T) {
		t.Parallel()

		fragments, err := goquery.NewExtractor().Extract(indexHTML)
		require.NoError(t, err)

		for _, f := range fragments {
			doc := mustDoc(t, indexHTML)

			sel, ok := goquery.MaterializeAnchor(doc, f.Anchor)

			require.True(t, ok, f.Anchor)
			assert.Equal(t, f.Text, sel.Text())
		}
	})

	t.Run("does nothing when identifier already exists", func(t *testing.T) {
		t.Parallel()

		doc := mustDoc(t, `<main><p id="bio">Graduado</p></main>`)

		_, ok := goquery.MaterializeAnchor(doc, "bio")

		assert.False(t, ok)
	})

	t.Run("does nothing when no content matches", func(t *testing.T) {
		t.Parallel()

		doc := mustDoc(t, indexHTML)

		_, ok := goquery.MaterializeAnchor(doc, "xyznotfound-3")

		assert.False(t, ok)
		assert.Equal(t, 0, doc.Find("#xyznotfound-3").Length())
	})

	t.Run("does nothing for empty fragment", func(t *testing.T) {
		t.Parallel()

		doc := mustDoc(t, indexHTML)

		_, ok := goquery.MaterializeAnchor(doc, "")

		assert.False(t, ok)
	})

	t.Run("matches truncated slug by prefix", func(t *testing.T) {
		t.Parallel()

		doc := mustDoc(t, `<main><p>Mi intención es proveer a la industria de nuevos tipos de software</p></main>`)

		sel, ok := goquery.MaterializeAnchor(doc, "mi-intencion-es-proveer-5")

		require.True(t, ok)
		assert.Equal(t, "p", gqNodeName(sel))
	})

	t.Run("assigns identifier to enclosing figure for images", func(t *testing.T) {
		t.Parallel()

		doc := mustDoc(t, `<main><figure><img src="yo.jpg" alt="Foto de Pelayo Rojas"></figure></main>`)

		sel, ok := goquery.MaterializeAnchor(doc, "foto-de-pelayo-rojas-0")

		require.True(t, ok)
		assert.Equal(t, "figure", gqNodeName(sel))
		assert.Equal(t, 1, doc.Find(`figure[id="foto-de-pelayo-rojas-0"]`).Length())
	})

	t.Run("assigns identifier to bare images", func(t *testing.T) {
		t.Parallel()

		doc := mustDoc(t, `<main><img src="yo.jpg" alt="Logotipo"></main>`)

		sel, ok := goquery.MaterializeAnchor(doc, "logotipo-2")

		require.True(t, ok)
		assert.Equal(t, "img", gqNodeName(sel))
	})
}

func TestPage(t *testing.T) {
	t.Parallel()

	t.Run("highlights and clears materialized element", func(t *testing.T) {
		t.Parallel()

		page, err := goquery.NewPage(indexHTML)
		require.NoError(t, err)

		require.True(t, page.MaterializeAnchor("sobre-mi-0"))
		page.ScrollIntoView("sobre-mi-0")
		page.SetHighlighted("sobre-mi-0", true)

		assert.Equal(t, "sobre-mi-0", page.ScrolledTo())
		assert.True(t, page.Highlighted("sobre-mi-0"))

		page.SetHighlighted("sobre-mi-0", false)

		assert.False(t, page.Highlighted("sobre-mi-0"))
	})

	t.Run("returns outer html of element", func(t *testing.T) {
		t.Parallel()

		page, err := goquery.NewPage(indexHTML)
		require.NoError(t, err)
		require.True(t, page.MaterializeAnchor("sobre-mi-0"))

		out, ok := page.Element("sobre-mi-0")

		require.True(t, ok)
		assert.Contains(t, out, `id="sobre-mi-0"`)
		assert.Contains(t, out, "Sobre mí")
	})

	t.Run("reports missing element", func(t *testing.T) {
		t.Parallel()

		page, err := goquery.NewPage(indexHTML)
		require.NoError(t, err)

		_, ok := page.Element("nada")

		assert.False(t, ok)
	})
}
