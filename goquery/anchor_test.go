package goquery_test

import (
	"testing"

	"github.com/fwojciec/sitesearch/goquery"
	"github.com/stretchr/testify/assert"
)

func TestResolveAnchor(t *testing.T) {
	t.Parallel()

	t.Run("uses element id", func(t *testing.T) {
		t.Parallel()

		doc := mustDoc(t, `<main><section id="s"><p id="propio">x</p></section></main>`)

		got := goquery.ResolveAnchor(doc.Find("p"), doc.Find("main"))

		assert.Equal(t, "propio", got)
	})

	t.Run("uses nearest identified section or article", func(t *testing.T) {
		t.Parallel()

		doc := mustDoc(t, `<main><article id="art"><div id="caja"><p>x</p></div></article></main>`)

		got := goquery.ResolveAnchor(doc.Find("p"), doc.Find("main"))

		assert.Equal(t, "art", got, "identified section wins over nearer plain ancestor")
	})

	t.Run("uses nearest identified plain ancestor", func(t *testing.T) {
		t.Parallel()

		doc := mustDoc(t, `<main><div id="exterior"><div id="interior"><p>x</p></div></div></main>`)

		got := goquery.ResolveAnchor(doc.Find("p"), doc.Find("main"))

		assert.Equal(t, "interior", got)
	})

	t.Run("stops plain ancestor walk at main content root", func(t *testing.T) {
		t.Parallel()

		doc := mustDoc(t, `<body id="cuerpo"><main id="principal"><p>x</p></main></body>`)

		got := goquery.ResolveAnchor(doc.Find("p"), doc.Find("main"))

		assert.Empty(t, got)
	})

	t.Run("uses identified heading of enclosing section", func(t *testing.T) {
		t.Parallel()

		doc := mustDoc(t, `<main><section><h2>Sin id</h2><h3 id="formacion">Formación</h3><p>x</p></section></main>`)

		got := goquery.ResolveAnchor(doc.Find("p"), doc.Find("main"))

		assert.Equal(t, "formacion", got)
	})

	t.Run("returns empty when nothing is identified", func(t *testing.T) {
		t.Parallel()

		doc := mustDoc(t, `<main><section><h2>Sin id</h2><p>x</p></section></main>`)

		got := goquery.ResolveAnchor(doc.Find("p"), doc.Find("main"))

		assert.Empty(t, got)
	})

	t.Run("walks to document element without root", func(t *testing.T) {
		t.Parallel()

		doc := mustDoc(t, `<body id="cuerpo"><div><p>x</p></div></body>`)

		got := goquery.ResolveAnchor(doc.Find("p"), nil)

		assert.Equal(t, "cuerpo", got)
	})
}
