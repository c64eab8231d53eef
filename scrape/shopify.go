package scrape

import (
	"context"
	"encoding/json"
	"net/url"
	"path"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/sync/errgroup"

	prodlister "github.com/Plug0007/prod-lister"
)

// productSitemapMarker identifies product sub-sitemaps inside a Shopify
// root sitemap index.
const productSitemapMarker = "sitemap_products"

// Ensure Shopify implements prodlister.Scraper at compile time.
var _ prodlister.Scraper = (*Shopify)(nil)

// Shopify discovers product handles via the store's XML sitemap index and
// maps the per-product JSON payload at /products/<handle>.js to one
// canonical record per handle.
type Shopify struct {
	Fetcher prodlister.Fetcher

	// StoreURL is the absolute store root.
	StoreURL string

	// Concurrency bounds the worker pool fetching product payloads. Zero or
	// one means sequential fetching. Output preserves handle discovery order.
	Concurrency int
}

// shopifyProduct is the subset of the per-product payload the canonical
// record needs. Variant prices are expressed in integer minor-currency
// units.
type shopifyProduct struct {
	Title    string `json:"title"`
	Type     string `json:"type"`
	Variants []struct {
		Price int64 `json:"price"`
	} `json:"variants"`
	Images []string `json:"images"`
}

// handleResult holds the outcome of mapping a single product handle.
type handleResult struct {
	product *prodlister.Product
	err     error
}

// Scrape traverses the store's product sub-sitemaps and fetches the
// structured payload for every discovered handle. A handle whose payload
// fails to fetch or decode is skipped with a diagnostic; traversal of the
// remaining handles continues.
func (s *Shopify) Scrape(ctx context.Context) (*prodlister.Catalog, error) {
	if s.Fetcher == nil {
		return nil, prodlister.Errorf(prodlister.EINVALID, "fetcher required")
	}
	base, err := parseBaseURL(s.StoreURL)
	if err != nil {
		return nil, err
	}

	catalog := &prodlister.Catalog{}

	sitemaps, err := s.productSitemaps(ctx, base)
	if err != nil {
		return nil, err
	}

	var handles []string
	for _, sm := range sitemaps {
		hs, err := s.handles(ctx, sm)
		if err != nil {
			catalog.Skips = append(catalog.Skips, prodlister.Skip{
				Unit:   "sitemap " + sm,
				Reason: err.Error(),
			})
			continue
		}
		handles = append(handles, hs...)
	}
	if len(handles) == 0 {
		return catalog, nil
	}

	// Fetch payloads with a bounded worker pool, collecting results by
	// position so the assembled output stays in discovery order.
	results := make([]handleResult, len(handles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers(s.Concurrency))
	for i, handle := range handles {
		g.Go(func() error {
			results[i] = s.product(gctx, base, handle)
			return nil
		})
	}
	_ = g.Wait()

	for i, res := range results {
		if res.err != nil {
			catalog.Skips = append(catalog.Skips, prodlister.Skip{
				Unit:   "handle " + handles[i],
				Reason: res.err.Error(),
			})
			continue
		}
		if res.product != nil {
			catalog.Products = append(catalog.Products, *res.product)
		}
	}

	return catalog, nil
}

// productSitemaps fetches the root sitemap index and returns every <loc>
// entry that names a product sub-sitemap. A store with no product
// sub-sitemaps yields an empty slice, not an error.
func (s *Shopify) productSitemaps(ctx context.Context, base *url.URL) ([]string, error) {
	data, err := s.Fetcher.Fetch(ctx, resolveURL(base, "/sitemap.xml"), prodlister.KindXML)
	if err != nil {
		return nil, err
	}

	locs, err := sitemapLocs(data)
	if err != nil {
		return nil, err
	}

	var sitemaps []string
	for _, loc := range locs {
		if strings.Contains(loc, productSitemapMarker) {
			sitemaps = append(sitemaps, loc)
		}
	}
	return sitemaps, nil
}

// handles fetches one product sub-sitemap and extracts the final path
// segment of every <loc> entry as a product handle.
func (s *Shopify) handles(ctx context.Context, sitemapURL string) ([]string, error) {
	data, err := s.Fetcher.Fetch(ctx, sitemapURL, prodlister.KindXML)
	if err != nil {
		return nil, err
	}

	locs, err := sitemapLocs(data)
	if err != nil {
		return nil, err
	}

	var handles []string
	for _, loc := range locs {
		u, err := url.Parse(loc)
		if err != nil {
			continue
		}
		handle := path.Base(u.Path)
		if handle == "" || handle == "." || handle == "/" {
			continue
		}
		handles = append(handles, handle)
	}
	return handles, nil
}

// sitemapLocs parses sitemap XML and returns the trimmed text of every
// <loc> element, skipping empty entries.
func sitemapLocs(data []byte) ([]string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, prodlister.Errorf(prodlister.EINVALID, "parsing sitemap XML: %v", err)
	}

	var locs []string
	for _, el := range doc.FindElements("//loc") {
		if text := strings.TrimSpace(el.Text()); text != "" {
			locs = append(locs, text)
		}
	}
	return locs, nil
}

// product fetches and maps the structured payload for a single handle.
// A payload with no title yields no record and no error.
func (s *Shopify) product(ctx context.Context, base *url.URL, handle string) handleResult {
	data, err := s.Fetcher.Fetch(ctx, resolveURL(base, "/products/"+handle+".js"), prodlister.KindJSON)
	if err != nil {
		return handleResult{err: err}
	}

	var payload shopifyProduct
	if err := json.Unmarshal(data, &payload); err != nil {
		return handleResult{err: prodlister.Errorf(prodlister.EINVALID, "decoding product payload: %v", err)}
	}

	name := strings.TrimSpace(payload.Title)
	if name == "" {
		return handleResult{}
	}

	category := strings.TrimSpace(payload.Type)
	if category == "" {
		category = prodlister.DefaultCategory
	}

	// Price is the minimum variant price converted from minor units;
	// absent when the payload carries no variants.
	var price *float64
	if len(payload.Variants) > 0 {
		min := payload.Variants[0].Price
		for _, v := range payload.Variants[1:] {
			if v.Price < min {
				min = v.Price
			}
		}
		p := float64(min) / 100
		price = &p
	}

	var image string
	if len(payload.Images) > 0 {
		image = payload.Images[0]
	}

	return handleResult{product: &prodlister.Product{
		Category: category,
		Name:     name,
		Price:    price,
		URL:      resolveURL(base, "/products/"+handle),
		Image:    image,
	}}
}
