package search

import (
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/sitesearch"
)

// DeepLinker follows incoming URL fragments whose anchors were synthesized
// at index time and never written into the page.
type DeepLinker struct {
	target    sitesearch.DeepLinkTarget
	highlight time.Duration
	logger    *slog.Logger

	mu      sync.Mutex
	pending map[string]*time.Timer
}

// NewDeepLinker returns a follower for target that keeps a followed element
// highlighted for the given duration. A non-positive duration uses
// sitesearch.DefaultHighlightDuration.
func NewDeepLinker(target sitesearch.DeepLinkTarget, highlight time.Duration, logger *slog.Logger) *DeepLinker {
	if highlight <= 0 {
		highlight = sitesearch.DefaultHighlightDuration
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DeepLinker{
		target:    target,
		highlight: highlight,
		logger:    logger,
		pending:   make(map[string]*time.Timer),
	}
}

// Follow resolves fragment (with or without the leading "#") on the target.
// When an element matches, it receives the identifier, is scrolled into
// view and stays highlighted until the highlight duration elapses.
// Returns false, doing nothing, when the fragment is empty, already
// identifies an element, or matches no content.
func (d *DeepLinker) Follow(fragment string) bool {
	if d.target == nil {
		return false
	}

	id := strings.TrimPrefix(fragment, "#")
	if unescaped, err := url.PathUnescape(id); err == nil {
		id = unescaped
	}
	if id == "" {
		return false
	}

	if !d.target.MaterializeAnchor(id) {
		d.logger.Debug("deep link not resolved", "fragment", id)
		return false
	}

	d.target.ScrollIntoView(id)
	d.target.SetHighlighted(id, true)
	d.scheduleClear(id)

	d.logger.Debug("deep link resolved", "fragment", id)
	return true
}

func (d *DeepLinker) scheduleClear(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t, ok := d.pending[id]; ok {
		t.Stop()
	}
	d.pending[id] = time.AfterFunc(d.highlight, func() {
		d.mu.Lock()
		delete(d.pending, id)
		d.mu.Unlock()
		d.target.SetHighlighted(id, false)
	})
}

// Stop cancels pending highlight removals and clears those highlights now.
func (d *DeepLinker) Stop() {
	d.mu.Lock()
	pending := d.pending
	d.pending = make(map[string]*time.Timer)
	d.mu.Unlock()

	for id, t := range pending {
		if t.Stop() {
			d.target.SetHighlighted(id, false)
		}
	}
}
