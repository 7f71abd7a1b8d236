// Package prometheus instruments sitesearch services with Prometheus metrics.
package prometheus

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/fwojciec/sitesearch"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors of one process.
type Metrics struct {
	registry *prometheus.Registry

	FetchesTotal        *prometheus.CounterVec
	FetchDuration       prometheus.Histogram
	SearchesTotal       prometheus.Counter
	SearchResults       prometheus.Histogram
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		FetchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sitesearch_fetches_total",
				Help: "Total number of page fetches.",
			},
			[]string{"status"},
		),
		FetchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sitesearch_fetch_duration_seconds",
				Help:    "Duration of page fetches.",
				Buckets: prometheus.DefBuckets,
			},
		),
		SearchesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "sitesearch_searches_total",
				Help: "Total number of searches run.",
			},
		),
		SearchResults: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sitesearch_search_matches",
				Help:    "Number of matches returned per search.",
				Buckets: []float64{0, 1, 2, 5, 10, 25, 50},
			},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sitesearch_http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sitesearch_http_request_duration_seconds",
				Help:    "Duration of HTTP requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	m.registry.MustRegister(
		m.FetchesTotal,
		m.FetchDuration,
		m.SearchesTotal,
		m.SearchResults,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
	)
	return m
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the collected metrics in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware counts and times requests by their chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		m.HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// Ensure InstrumentedFetcher implements sitesearch.Fetcher.
var _ sitesearch.Fetcher = (*InstrumentedFetcher)(nil)

// InstrumentedFetcher records the outcome and duration of each fetch.
type InstrumentedFetcher struct {
	next    sitesearch.Fetcher
	metrics *Metrics
}

// NewInstrumentedFetcher wraps next with fetch metrics.
func NewInstrumentedFetcher(next sitesearch.Fetcher, m *Metrics) *InstrumentedFetcher {
	return &InstrumentedFetcher{next: next, metrics: m}
}

func (f *InstrumentedFetcher) Fetch(ctx context.Context, url string) (string, error) {
	start := time.Now()
	html, err := f.next.Fetch(ctx, url)
	f.metrics.FetchDuration.Observe(time.Since(start).Seconds())

	status := "ok"
	if err != nil {
		status = "error"
	}
	f.metrics.FetchesTotal.WithLabelValues(status).Inc()
	return html, err
}

// Searcher answers queries against the site index.
type Searcher interface {
	Search(ctx context.Context, tr sitesearch.Translator, query string) ([]sitesearch.SearchResult, error)
}

// InstrumentedSearcher counts searches and the matches they return.
type InstrumentedSearcher struct {
	next    Searcher
	metrics *Metrics
}

// NewInstrumentedSearcher wraps next with search metrics.
func NewInstrumentedSearcher(next Searcher, m *Metrics) *InstrumentedSearcher {
	return &InstrumentedSearcher{next: next, metrics: m}
}

func (s *InstrumentedSearcher) Search(ctx context.Context, tr sitesearch.Translator, query string) ([]sitesearch.SearchResult, error) {
	results, err := s.next.Search(ctx, tr, query)
	if err != nil {
		return nil, err
	}
	if _, ok := sitesearch.NormalizeQuery(query); ok {
		s.metrics.SearchesTotal.Inc()
		s.metrics.SearchResults.Observe(float64(sitesearch.TotalMatches(results)))
	}
	return results, nil
}
