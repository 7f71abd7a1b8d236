package search_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/goquery"
	"github.com/fwojciec/sitesearch/mock"
	"github.com/fwojciec/sitesearch/search"
)

const indexHTML = `<!DOCTYPE html>
<html lang="es"><body>
<main>
	<h1 data-i18n="index.sobre-mi">Sobre mí</h1>
	<p data-i18n="index.descripcion">Graduado y entusiasta de la ingeniería de software.</p>
</main>
</body></html>`

const contactHTML = `<!DOCTYPE html>
<html lang="es"><body>
<main>
	<h1 data-i18n="contacto.titulo">¡Contáctame!</h1>
	<p>Puedes escribirme a través del formulario.</p>
</main>
</body></html>`

var sitePages = []sitesearch.PageDescriptor{
	{URL: "index.html", Title: "Inicio", TitleAlt: "Home"},
	{URL: "contacto.html", Title: "Contacto", TitleAlt: "Contact"},
}

// siteFetcher serves the two test pages and counts fetches per URL.
type siteFetcher struct {
	mu     sync.Mutex
	counts map[string]int
	total  atomic.Int64

	// gate, when set, blocks every fetch until it is closed.
	gate chan struct{}
}

func newSiteFetcher() *siteFetcher {
	return &siteFetcher{counts: make(map[string]int)}
}

func (f *siteFetcher) fetcher() *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			f.mu.Lock()
			f.counts[url]++
			f.mu.Unlock()
			f.total.Add(1)

			if f.gate != nil {
				select {
				case <-f.gate:
				case <-ctx.Done():
					return "", ctx.Err()
				}
			}

			switch url {
			case "index.html":
				return indexHTML, nil
			case "contacto.html":
				return contactHTML, nil
			}
			return "", errors.New("HTTP 404 for " + url)
		},
	}
}

func (f *siteFetcher) count(url string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counts[url]
}

func newLoader(f *siteFetcher, opts ...search.LoaderOption) *search.Loader {
	return search.NewLoader(sitePages, f.fetcher(), goquery.NewExtractor(), opts...)
}

// dictionary returns a translator for lang backed by entries.
func dictionary(lang string, entries map[string]string) *mock.Translator {
	return &mock.Translator{
		TranslateFn: func(key string) string {
			if t, ok := entries[key]; ok {
				return t
			}
			return key
		},
		LanguageFn: func() string { return lang },
	}
}
