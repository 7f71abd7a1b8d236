// Package search provides the lazy page index, the query controller
// that drives a search view, and the deep-link follower.
package search

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fwojciec/sitesearch"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// loadAllKey is the single-flight key shared by every LoadAll caller.
const loadAllKey = "\x00all"

var _ sitesearch.FragmentIndex = (*Loader)(nil)

// Loader fetches pages on demand and keeps their fragments in memory.
type Loader struct {
	pages       []sitesearch.PageDescriptor
	fetcher     sitesearch.Fetcher
	extractor   sitesearch.FragmentExtractor
	concurrency int
	logger      *slog.Logger

	mu    sync.RWMutex
	index map[string][]sitesearch.Fragment

	complete atomic.Bool
	flight   singleflight.Group
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithConcurrency limits how many pages LoadAll fetches at once.
// Zero or negative means sitesearch.DefaultConcurrency.
func WithConcurrency(n int) LoaderOption {
	return func(l *Loader) {
		l.concurrency = n
	}
}

// WithLogger sets the logger for load failures and progress.
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader returns a loader for pages that has fetched nothing yet.
func NewLoader(pages []sitesearch.PageDescriptor, fetcher sitesearch.Fetcher, extractor sitesearch.FragmentExtractor, opts ...LoaderOption) *Loader {
	l := &Loader{
		pages:     pages,
		fetcher:   fetcher,
		extractor: extractor,
		index:     make(map[string][]sitesearch.Fragment, len(pages)),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.concurrency <= 0 {
		l.concurrency = sitesearch.DefaultConcurrency
	}
	if l.logger == nil {
		l.logger = slog.New(slog.DiscardHandler)
	}
	return l
}

// Pages returns the configured pages in display order.
func (l *Loader) Pages() []sitesearch.PageDescriptor {
	return l.pages
}

// Fragments returns the cached fragments of url. The boolean is false
// while the page has not been loaded; a loaded page may have none.
func (l *Loader) Fragments(url string) ([]sitesearch.Fragment, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	f, ok := l.index[url]
	return f, ok
}

// Loaded reports whether LoadAll has completed.
func (l *Loader) Loaded() bool {
	return l.complete.Load()
}

// LoadPage returns the fragments of url, fetching and extracting the page
// on the first call. It never fails: a fetch or parse failure is logged and
// recorded as an empty entry, so the page is not fetched again. Concurrent
// calls for the same page share one fetch.
//
// The shared fetch is not tied to any one caller: cancelling ctx makes this
// call return no fragments while the fetch continues and records the page
// for the others.
func (l *Loader) LoadPage(ctx context.Context, url string) []sitesearch.Fragment {
	if f, ok := l.Fragments(url); ok {
		return f
	}
	if ctx.Err() != nil {
		return []sitesearch.Fragment{}
	}

	ch := l.flight.DoChan(url, func() (any, error) {
		if f, ok := l.Fragments(url); ok {
			return f, nil
		}

		fragments, err := l.load(context.WithoutCancel(ctx), url)
		if err != nil {
			l.logger.Warn("page load failed", "url", url, "error", err)
			fragments = []sitesearch.Fragment{}
		}

		l.mu.Lock()
		l.index[url] = fragments
		l.mu.Unlock()
		return fragments, nil
	})

	select {
	case res := <-ch:
		return res.Val.([]sitesearch.Fragment)
	case <-ctx.Done():
		return []sitesearch.Fragment{}
	}
}

func (l *Loader) load(ctx context.Context, url string) ([]sitesearch.Fragment, error) {
	html, err := l.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	fragments, err := l.extractor.Extract(html)
	if err != nil {
		return nil, err
	}
	if fragments == nil {
		fragments = []sitesearch.Fragment{}
	}
	return fragments, nil
}

// LoadAll loads every configured page. Callers arriving while a load is
// in flight wait for that same load; once it has completed, LoadAll
// returns immediately without fetching anything.
//
// The shared load is not tied to any one caller: cancelling ctx makes this
// call return ctx.Err() while the load continues for the others.
func (l *Loader) LoadAll(ctx context.Context) error {
	if l.complete.Load() {
		return nil
	}

	ch := l.flight.DoChan(loadAllKey, func() (any, error) {
		if l.complete.Load() {
			return nil, nil
		}
		l.loadAll(context.WithoutCancel(ctx))
		l.complete.Store(true)
		return nil, nil
	})

	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Loader) loadAll(ctx context.Context) {
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)

	var fragments atomic.Int64
	for _, page := range l.pages {
		g.Go(func() error {
			fragments.Add(int64(len(l.LoadPage(gctx, page.URL))))
			return nil
		})
	}
	_ = g.Wait()

	l.logger.Info("index loaded",
		"pages", len(l.pages),
		"fragments", fragments.Load(),
		"duration", time.Since(start),
	)
}

// Search loads every page and returns the results of query.
// A query that is too short yields no results and loads nothing.
func (l *Loader) Search(ctx context.Context, tr sitesearch.Translator, raw string) ([]sitesearch.SearchResult, error) {
	query, ok := sitesearch.NormalizeQuery(raw)
	if !ok {
		return nil, nil
	}
	if err := l.LoadAll(ctx); err != nil {
		return nil, err
	}
	return sitesearch.Search(l.pages, l, tr, query), nil
}
