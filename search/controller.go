package search

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fwojciec/sitesearch"
)

// Controller drives a search view from user actions.
// Only the most recently started search may update the view.
type Controller struct {
	view       sitesearch.SearchView
	loader     *Loader
	renderer   sitesearch.ResultRenderer
	translator sitesearch.Translator
	debouncer  *Debouncer
	logger     *slog.Logger

	// generation identifies the newest search; older ones are stale.
	generation atomic.Uint64

	mu      sync.Mutex
	visible bool
	wg      sync.WaitGroup
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithDebounce sets the delay between the last input and the search.
// Defaults to sitesearch.DefaultDebounce.
func WithDebounce(d time.Duration) ControllerOption {
	return func(c *Controller) {
		c.debouncer = NewDebouncer(d)
	}
}

// WithControllerLogger sets the controller's logger.
func WithControllerLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

// NewController returns a controller rendering into view.
// A nil view makes every action a no-op.
func NewController(view sitesearch.SearchView, loader *Loader, renderer sitesearch.ResultRenderer, tr sitesearch.Translator, opts ...ControllerOption) *Controller {
	c := &Controller{
		view:       view,
		loader:     loader,
		renderer:   renderer,
		translator: tr,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.debouncer == nil {
		c.debouncer = NewDebouncer(sitesearch.DefaultDebounce)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	return c
}

// Visible reports whether the search UI is shown.
func (c *Controller) Visible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible
}

// Preload loads the page at urlPath so its own content is searchable first.
func (c *Controller) Preload(ctx context.Context, urlPath string) {
	c.background(func() {
		c.loader.LoadPage(ctx, sitesearch.CurrentPage(urlPath))
	})
}

// Toggle shows the search UI, or closes it when it is already shown.
// Showing focuses the input and starts loading every page.
func (c *Controller) Toggle(ctx context.Context) {
	if c.view == nil {
		return
	}

	c.mu.Lock()
	c.visible = !c.visible
	visible := c.visible
	c.mu.Unlock()

	if !visible {
		c.close()
		return
	}

	c.view.ShowSearch()
	c.view.SetExpanded(true)
	c.view.FocusInput()
	c.startLoading(ctx)
}

// Close hides the search UI and its results and clears the input.
func (c *Controller) Close() {
	if c.view == nil {
		return
	}

	c.mu.Lock()
	c.visible = false
	c.mu.Unlock()

	c.close()
}

func (c *Controller) close() {
	c.debouncer.Cancel()
	c.generation.Add(1)

	c.view.HideSearch()
	c.view.SetExpanded(false)
	c.view.HideResults()
	c.view.ClearInput()
}

// Focus starts loading every page in the background.
func (c *Controller) Focus(ctx context.Context) {
	if c.view == nil {
		return
	}
	c.startLoading(ctx)
}

func (c *Controller) startLoading(ctx context.Context) {
	if c.loader.Loaded() {
		return
	}
	c.background(func() {
		_ = c.loader.LoadAll(ctx)
	})
}

// Input schedules a search of the current input after the debounce delay.
// Each call replaces the previously scheduled search.
func (c *Controller) Input(ctx context.Context) {
	if c.view == nil {
		return
	}
	c.debouncer.Schedule(func() {
		c.run(ctx)
	})
}

// Submit searches the current input immediately and returns once the
// view shows the outcome.
func (c *Controller) Submit(ctx context.Context) {
	if c.view == nil {
		return
	}
	c.debouncer.Cancel()
	c.run(ctx)
}

// Wait blocks until background loads started by the controller finish.
func (c *Controller) Wait() {
	c.wg.Wait()
}

func (c *Controller) background(fn func()) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		fn()
	}()
}

func (c *Controller) run(ctx context.Context) {
	gen := c.generation.Add(1)

	query, ok := sitesearch.NormalizeQuery(c.view.Query())
	if !ok {
		c.publish(gen, func() { c.view.HideResults() })
		return
	}

	if err := c.loader.LoadAll(ctx); err != nil {
		c.logger.Debug("search abandoned", "query", query, "error", err)
		return
	}
	if c.stale(gen) {
		c.logger.Debug("stale search dropped", "query", query)
		return
	}

	results := sitesearch.Search(c.loader.Pages(), c.loader, c.translator, query)
	markup := ""
	if c.renderer != nil {
		markup = c.renderer.Render(results, query, c.translator)
	}

	c.publish(gen, func() { c.view.ShowResults(markup) })
	c.logger.Debug("search", "query", query, "pages", len(results), "matches", sitesearch.TotalMatches(results))
}

func (c *Controller) stale(gen uint64) bool {
	return c.generation.Load() != gen
}

// publish applies update unless a newer search has started.
func (c *Controller) publish(gen uint64, update func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stale(gen) {
		return
	}
	update()
}
