package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/sitesearch"
)

// Ensure LoggingExtractor implements sitesearch.FragmentExtractor.
var _ sitesearch.FragmentExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a FragmentExtractor with debug logging.
type LoggingExtractor struct {
	next   sitesearch.FragmentExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next sitesearch.FragmentExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the fragment count.
func (e *LoggingExtractor) Extract(html string) (fragments []sitesearch.Fragment, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("extract",
			"bytes", len(html),
			"fragments", len(fragments),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
