package scrape

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"

	prodlister "github.com/Plug0007/prod-lister"
)

// WooCommerce card selectors. The name element has two alternate forms in
// the wild; the first match wins.
const (
	wooCardSelector  = "li.product"
	wooNameSelector  = ".woocommerce-loop-product__title, h2.woocommerce-loop-product__title"
	wooPriceSelector = "span.price"
	wooLinkSelector  = "a[href]"
	wooImageSelector = "img[src]"
)

// Ensure WooCommerce implements prodlister.Scraper at compile time.
var _ prodlister.Scraper = (*WooCommerce)(nil)

// WooCommerce crawls a paginated WooCommerce-style catalogue, one canonical
// record per product card. Pages after the first are discovered via the
// pager control and addressed by setting the "paged" query parameter.
type WooCommerce struct {
	Fetcher prodlister.Fetcher

	// ShopURL is the absolute listing URL of page 1.
	ShopURL string

	// MaxPages clamps the discovered page count. Zero means unclamped.
	MaxPages int

	// Concurrency bounds the worker pool fetching pages 2..N. Zero or one
	// means sequential fetching. Output order is page order regardless.
	Concurrency int
}

// pageResult holds the outcome of scraping a single page.
type pageResult struct {
	products []prodlister.Product
	err      error
}

// Scrape fetches page 1, discovers the total page count, and crawls the
// remaining pages. A page that fails to fetch or parse is skipped with a
// diagnostic; the crawl continues with subsequent pages.
func (s *WooCommerce) Scrape(ctx context.Context) (*prodlister.Catalog, error) {
	if s.Fetcher == nil {
		return nil, prodlister.Errorf(prodlister.EINVALID, "fetcher required")
	}
	base, err := parseBaseURL(s.ShopURL)
	if err != nil {
		return nil, err
	}

	data, err := s.Fetcher.Fetch(ctx, s.ShopURL, prodlister.KindHTML)
	if err != nil {
		return nil, err
	}
	doc, err := newDocument(data)
	if err != nil {
		return nil, err
	}

	catalog := &prodlister.Catalog{
		Products: extractWooCards(doc, base),
	}

	total := LastPage(doc)
	if s.MaxPages > 0 && total > s.MaxPages {
		total = s.MaxPages
	}
	if total <= 1 {
		return catalog, nil
	}

	// Fetch pages 2..total with a bounded worker pool, collecting results
	// by position so the assembled output stays in page order.
	results := make([]pageResult, total-1)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers(s.Concurrency))
	for i := range results {
		page := i + 2
		g.Go(func() error {
			results[page-2] = s.scrapePage(gctx, base, page)
			return nil
		})
	}
	_ = g.Wait()

	for i, res := range results {
		if res.err != nil {
			catalog.Skips = append(catalog.Skips, prodlister.Skip{
				Unit:   fmt.Sprintf("page %d", i+2),
				Reason: res.err.Error(),
			})
			continue
		}
		catalog.Products = append(catalog.Products, res.products...)
	}

	return catalog, nil
}

// scrapePage fetches and extracts a single catalogue page.
func (s *WooCommerce) scrapePage(ctx context.Context, base *url.URL, page int) pageResult {
	data, err := s.Fetcher.Fetch(ctx, pageURL(base, page), prodlister.KindHTML)
	if err != nil {
		return pageResult{err: err}
	}
	doc, err := newDocument(data)
	if err != nil {
		return pageResult{err: err}
	}
	return pageResult{products: extractWooCards(doc, base)}
}

// pageURL sets (or overwrites) the "paged" query parameter while preserving
// all other query parameters.
func pageURL(base *url.URL, page int) string {
	u := *base
	q := u.Query()
	q.Set("paged", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return u.String()
}

// extractWooCards extracts one canonical record per product card. A card
// missing its name, price, or link element is silently skipped, as is a
// card whose price text contains no parseable amount.
func extractWooCards(doc *goquery.Document, base *url.URL) []prodlister.Product {
	var products []prodlister.Product

	doc.Find(wooCardSelector).Each(func(_ int, card *goquery.Selection) {
		nameSel := card.Find(wooNameSelector).First()
		priceSel := card.Find(wooPriceSelector).First()
		linkSel := card.Find(wooLinkSelector).First()
		if nameSel.Length() == 0 || priceSel.Length() == 0 || linkSel.Length() == 0 {
			return
		}

		name := strings.TrimSpace(nameSel.Text())
		if name == "" {
			return
		}

		price, ok := prodlister.ParsePrice(priceSel.Text())
		if !ok {
			return
		}

		href, _ := linkSel.Attr("href")
		link := resolveURL(base, href)
		if link == "" {
			return
		}

		var image string
		if src, exists := card.Find(wooImageSelector).First().Attr("src"); exists {
			image = resolveURL(base, src)
		}

		products = append(products, prodlister.Product{
			Category: wooCategory(card),
			Name:     name,
			Price:    &price,
			URL:      link,
			Image:    image,
		})
	})

	return products
}

// wooCategory reads the card's data-product_cat attribute, falling back to
// the card's first class token. The class fallback is a compatibility
// heuristic: the token is often a layout class rather than a real category.
func wooCategory(card *goquery.Selection) string {
	if cat := strings.TrimSpace(card.AttrOr("data-product_cat", "")); cat != "" {
		return cat
	}
	if classes := strings.Fields(card.AttrOr("class", "")); len(classes) > 0 {
		return classes[0]
	}
	return prodlister.DefaultCategory
}
