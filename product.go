package prodlister

import "net/url"

// DefaultCategory is the sentinel category assigned to products whose
// source exposes no usable category information.
const DefaultCategory = "Uncategorised"

// Columns is the canonical column order consumed by report writers.
var Columns = []string{"Category", "Product Name", "Price", "URL", "Image"}

// Product is the canonical record every adapter converges on. A Product is
// constructed entirely within one adapter invocation from one parsed unit
// (one card, or one sitemap entry plus its API payload) and is immutable
// once appended to a Catalog.
type Product struct {
	Category string   `json:"category"`
	Name     string   `json:"name"`
	Price    *float64 `json:"price,omitempty"` // nil when no price could be parsed
	URL      string   `json:"url"`
	Image    string   `json:"image"`
}

// Validate returns an error if the product violates the canonical record
// invariants: a non-empty name, an absolute URL, and a non-negative price
// when a price is present.
func (p *Product) Validate() error {
	if p.Name == "" {
		return Errorf(EINVALID, "product name required")
	}
	u, err := url.Parse(p.URL)
	if err != nil || !u.IsAbs() {
		return Errorf(EINVALID, "product URL must be absolute, got %q", p.URL)
	}
	if p.Price != nil && *p.Price < 0 {
		return Errorf(EINVALID, "product price must be non-negative, got %v", *p.Price)
	}
	return nil
}

// Catalog is the ordered output of one scrape: the emitted products plus
// the diagnostics for every page or handle that was skipped along the way.
type Catalog struct {
	Products []Product
	Skips    []Skip
}

// Skip records one non-fatal decision to omit a unit of work (a page or a
// product handle) while the larger operation continued.
type Skip struct {
	Unit   string // e.g. "page 3", "handle blue-tee"
	Reason string
}
