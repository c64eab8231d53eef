// Package scrape implements the three storefront adapters: a paginated
// WooCommerce-style catalogue crawler, a Shopify-style sitemap+API crawler,
// and a selector-driven generic single-page scraper. All three implement
// prodlister.Scraper and converge on the canonical product record.
package scrape

import (
	"bytes"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"

	prodlister "github.com/Plug0007/prod-lister"
)

// newDocument parses raw HTML into a queryable document.
func newDocument(data []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, prodlister.Errorf(prodlister.EINVALID, "parsing HTML: %v", err)
	}
	return doc, nil
}

// resolveURL resolves a possibly-relative href against a base URL.
// Returns empty string if the href cannot be parsed.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// parseBaseURL validates the caller-supplied source URL before any network
// activity.
func parseBaseURL(rawurl string) (*url.URL, error) {
	if rawurl == "" {
		return nil, prodlister.Errorf(prodlister.EINVALID, "source URL required")
	}
	u, err := url.Parse(rawurl)
	if err != nil || !u.IsAbs() {
		return nil, prodlister.Errorf(prodlister.EINVALID, "source URL must be absolute, got %q", rawurl)
	}
	return u, nil
}

// workers clamps a caller-supplied concurrency to at least one worker.
// The default is sequential fetching.
func workers(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// Fingerprint returns a stable hash of the catalog's ordered record fields.
// Two runs against the same input pages produce the same fingerprint, which
// makes catalogue changes between runs cheap to detect.
func Fingerprint(c *prodlister.Catalog) uint64 {
	d := xxhash.New()
	for _, p := range c.Products {
		_, _ = d.WriteString(p.Category)
		_, _ = d.WriteString("\x1f")
		_, _ = d.WriteString(p.Name)
		_, _ = d.WriteString("\x1f")
		if p.Price != nil {
			_, _ = d.WriteString(strconv.FormatFloat(*p.Price, 'f', -1, 64))
		}
		_, _ = d.WriteString("\x1f")
		_, _ = d.WriteString(p.URL)
		_, _ = d.WriteString("\x1f")
		_, _ = d.WriteString(p.Image)
		_, _ = d.WriteString("\x1e")
	}
	return d.Sum64()
}
