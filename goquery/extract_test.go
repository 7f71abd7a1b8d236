package goquery_test

import (
	"strings"
	"testing"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements sitesearch.FragmentExtractor at compile time.
var _ sitesearch.FragmentExtractor = (*goquery.Extractor)(nil)

const indexHTML = `<!DOCTYPE html>
<html lang="es">
<head><title>Inicio</title></head>
<body>
<header><h1>No indexado</h1></header>
<main>
	<h1 data-i18n="index.sobre-mi">Sobre mí</h1>
	<p data-i18n="index.descripcion">Graduado y entusiasta de la ingeniería de software.</p>
</main>
<footer><p>Pie de página</p></footer>
</body>
</html>`

func mustDoc(t *testing.T, html string) *gq.Document {
	t.Helper()
	doc, err := gq.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts main content only", func(t *testing.T) {
		t.Parallel()

		fragments, err := goquery.NewExtractor().Extract(indexHTML)

		require.NoError(t, err)
		require.Len(t, fragments, 2)
		assert.Equal(t, sitesearch.Fragment{
			Text:           "Sobre mí",
			TranslationKey: "index.sobre-mi",
			Anchor:         "sobre-mi-0",
		}, fragments[0])
		assert.Equal(t, sitesearch.Fragment{
			Text:           "Graduado y entusiasta de la ingeniería de software.",
			TranslationKey: "index.descripcion",
			Anchor:         "graduado-y-entusiasta-de-la-ingenieria-d-1",
		}, fragments[1])
	})

	t.Run("returns no fragments without main element", func(t *testing.T) {
		t.Parallel()

		fragments, err := goquery.NewExtractor().Extract(`<html><body><p>Hola</p></body></html>`)

		require.NoError(t, err)
		assert.Empty(t, fragments)
	})

	t.Run("groups fragments by category in fixed order", func(t *testing.T) {
		t.Parallel()

		html := `<main>
			<details><summary>Más detalles</summary></details>
			<figure><img src="a.jpg" alt="Una foto"><figcaption>Pie de foto</figcaption></figure>
			<blockquote>Una cita</blockquote>
			<ul><li>Elemento</li></ul>
			<p>Párrafo</p>
			<h2>Título</h2>
		</main>`

		fragments, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		var texts []string
		for _, f := range fragments {
			texts = append(texts, f.Text)
		}
		assert.Equal(t, []string{"Título", "Párrafo", "Elemento", "Una cita", "Pie de foto", "Una foto", "Más detalles"}, texts)
	})

	t.Run("counts synthesized anchors across categories", func(t *testing.T) {
		t.Parallel()

		html := `<main>
			<p>Texto</p>
			<h2>Texto</h2>
			<li>Texto</li>
		</main>`

		fragments, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		require.Len(t, fragments, 3)
		assert.Equal(t, "texto-0", fragments[0].Anchor, "heading first")
		assert.Equal(t, "texto-1", fragments[1].Anchor, "paragraph second")
		assert.Equal(t, "texto-2", fragments[2].Anchor, "list item third")
	})

	t.Run("gives identical text distinct anchors", func(t *testing.T) {
		t.Parallel()

		html := `<main><p>Repetido</p><p>Repetido</p></main>`

		fragments, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		require.Len(t, fragments, 2)
		assert.NotEqual(t, fragments[0].Anchor, fragments[1].Anchor)
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		first, err := goquery.NewExtractor().Extract(indexHTML)
		require.NoError(t, err)
		second, err := goquery.NewExtractor().Extract(indexHTML)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("skips elements with blank text", func(t *testing.T) {
		t.Parallel()

		html := `<main><p>   </p><li></li><img src="x.png" alt="  "><img src="y.png"></main>`

		fragments, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Empty(t, fragments)
	})

	t.Run("trims text content", func(t *testing.T) {
		t.Parallel()

		fragments, err := goquery.NewExtractor().Extract("<main><p>\n\t  Hola mundo  \n</p></main>")

		require.NoError(t, err)
		require.Len(t, fragments, 1)
		assert.Equal(t, "Hola mundo", fragments[0].Text)
	})

	t.Run("prefers authored identifiers over synthesized ones", func(t *testing.T) {
		t.Parallel()

		html := `<main>
			<section id="objetivos">
				<h2>Objetivos profesionales</h2>
				<p>Software de calidad</p>
			</section>
			<p id="bio">Actualmente estudio</p>
			<p>Sin ancla</p>
		</main>`

		fragments, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		require.Len(t, fragments, 4)
		assert.Equal(t, "objetivos", fragments[0].Anchor)
		assert.Equal(t, "objetivos", fragments[1].Anchor)
		assert.Equal(t, "bio", fragments[2].Anchor)
		assert.Equal(t, "sin-ancla-0", fragments[3].Anchor)
	})

	t.Run("reads image translation key and figure anchor", func(t *testing.T) {
		t.Parallel()

		html := `<main>
			<figure id="foto"><img src="yo.jpg" alt="Foto de Pelayo Rojas" data-i18n="index.foto-alt"></figure>
		</main>`

		fragments, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		require.Len(t, fragments, 1)
		assert.Equal(t, sitesearch.Fragment{
			Text:           "Foto de Pelayo Rojas",
			TranslationKey: "index.foto-alt",
			Anchor:         "foto",
		}, fragments[0])
	})

	t.Run("prefers the figure id over its section for images", func(t *testing.T) {
		t.Parallel()

		html := `<main><section id="galeria">
			<figure id="retrato"><img src="yo.jpg" alt="Retrato"></figure>
			<p>Texto</p>
		</section></main>`

		fragments, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		require.Len(t, fragments, 2)
		assert.Equal(t, "galeria", fragments[0].Anchor)
		assert.Equal(t, "Retrato", fragments[1].Text)
		assert.Equal(t, "retrato", fragments[1].Anchor)
	})

	t.Run("leaves anchor empty when text has no slug", func(t *testing.T) {
		t.Parallel()

		fragments, err := goquery.NewExtractor().Extract(`<main><p>¡¿?!</p><p>Luego</p></main>`)

		require.NoError(t, err)
		require.Len(t, fragments, 2)
		assert.Empty(t, fragments[0].Anchor)
		assert.Equal(t, "luego-0", fragments[1].Anchor)
	})
}
