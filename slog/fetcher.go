package slog

import (
	"context"
	"log/slog"
	"time"

	prodlister "github.com/Plug0007/prod-lister"
)

// Ensure Fetcher implements prodlister.Fetcher.
var _ prodlister.Fetcher = (*Fetcher)(nil)

// Fetcher wraps a prodlister.Fetcher with debug logging.
type Fetcher struct {
	next   prodlister.Fetcher
	logger *slog.Logger
}

// NewFetcher creates a new logging Fetcher.
func NewFetcher(next prodlister.Fetcher, logger *slog.Logger) *Fetcher {
	return &Fetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *Fetcher) Fetch(ctx context.Context, url string, kind prodlister.ContentKind) (body []byte, err error) {
	defer func(begin time.Time) {
		f.logger.Debug("fetch",
			"url", url,
			"bytes", len(body),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url, kind)
}

// Close delegates to the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}
