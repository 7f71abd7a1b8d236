// Package http fetches site pages over HTTP and serves the site with
// search, translations and the page map applied.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/sitesearch"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = sitesearch.DefaultTimeout

// Ensure Fetcher implements sitesearch.Fetcher at compile time.
var _ sitesearch.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page HTML over HTTP. Relative page URLs are resolved
// against the base URL.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	base    *url.URL
	limiter *rate.Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithBaseURL resolves relative page URLs such as "index.html" against base.
// The base path is treated as a directory, so https://host/site and
// https://host/site/ both resolve index.html to https://host/site/index.html.
func WithBaseURL(base *url.URL) Option {
	return func(f *Fetcher) {
		if base == nil {
			f.base = nil
			return
		}
		dir := *base
		if !strings.HasSuffix(dir.Path, "/") {
			dir.Path += "/"
			if dir.RawPath != "" {
				dir.RawPath += "/"
			}
		}
		f.base = &dir
	}
}

// WithRequestsPerSecond paces requests to at most rps per second.
// Zero or negative leaves requests unpaced.
func WithRequestsPerSecond(rps float64) Option {
	return func(f *Fetcher) {
		if rps > 0 {
			f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		} else {
			f.limiter = nil
		}
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content of page.
// Any status other than 200 is an error.
func (f *Fetcher) Fetch(ctx context.Context, page string) (string, error) {
	target, err := f.resolve(page)
	if err != nil {
		return "", err
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, target)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

func (f *Fetcher) resolve(page string) (string, error) {
	if f.base == nil {
		return page, nil
	}
	ref, err := url.Parse(page)
	if err != nil {
		return "", sitesearch.Errorf(sitesearch.EINVALID, "invalid page URL %q", page)
	}
	return f.base.ResolveReference(ref).String(), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
