// Package slog provides logging decorators for the prodlister interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	prodlister "github.com/Plug0007/prod-lister"
)

// Ensure Scraper implements prodlister.Scraper.
var _ prodlister.Scraper = (*Scraper)(nil)

// Scraper wraps a prodlister.Scraper with structured logging.
type Scraper struct {
	next   prodlister.Scraper
	logger *slog.Logger
	source string
}

// NewScraper creates a new logging Scraper. The source label identifies the
// adapter in log output (e.g. "woocommerce").
func NewScraper(next prodlister.Scraper, logger *slog.Logger, source string) *Scraper {
	return &Scraper{next: next, logger: logger, source: source}
}

// Scrape delegates to the wrapped scraper and logs the outcome, including
// one warning per skip diagnostic.
func (s *Scraper) Scrape(ctx context.Context) (catalog *prodlister.Catalog, err error) {
	defer func(begin time.Time) {
		var products, skips int
		if catalog != nil {
			products = len(catalog.Products)
			skips = len(catalog.Skips)
		}
		s.logger.Info("scrape",
			"source", s.source,
			"products", products,
			"skips", skips,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())

	catalog, err = s.next.Scrape(ctx)
	if catalog != nil {
		for _, skip := range catalog.Skips {
			s.logger.Warn("scrape skip",
				"source", s.source,
				"unit", skip.Unit,
				"reason", skip.Reason,
			)
		}
	}
	return catalog, err
}
