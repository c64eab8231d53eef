package mock

import (
	"context"

	prodlister "github.com/Plug0007/prod-lister"
)

var _ prodlister.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of prodlister.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context) (*prodlister.Catalog, error)
}

func (s *Scraper) Scrape(ctx context.Context) (*prodlister.Catalog, error) {
	return s.ScrapeFn(ctx)
}
