package prodlister

import "context"

// Scraper extracts a product catalog from one storefront shape.
// Implementations validate their configuration before any network activity
// and convert per-page or per-handle failures into Catalog.Skips rather
// than errors; Scrape returns an error only for configuration problems
// (code EINVALID) or failures that make the whole source unreadable.
//
// Given the same input pages, Scrape produces an identical Catalog on every
// run, order included, regardless of fetch completion order.
type Scraper interface {
	Scrape(ctx context.Context) (*Catalog, error)
}
