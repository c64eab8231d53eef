package scrape

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	prodlister "github.com/Plug0007/prod-lister"
)

// Selectors describes an arbitrary catalogue page structurally. Product,
// Name and Price are required; Category and Image are optional and fall
// back to the default category sentinel and an empty image respectively.
type Selectors struct {
	Product  string
	Name     string
	Price    string
	Category string
	Image    string
}

// Ensure Generic implements prodlister.Scraper at compile time.
var _ prodlister.Scraper = (*Generic)(nil)

// Generic applies caller-supplied CSS selectors to a single page and emits
// one canonical record per matching product card.
type Generic struct {
	Fetcher prodlister.Fetcher

	// PageURL is the absolute catalogue page URL.
	PageURL string

	Selectors Selectors
}

// Scrape fetches and parses the page once. A card whose name or price
// sub-selector does not match, or whose price text contains no parseable
// amount, is excluded entirely; a failed optional sub-selector never
// excludes a card.
func (s *Generic) Scrape(ctx context.Context) (*prodlister.Catalog, error) {
	if s.Fetcher == nil {
		return nil, prodlister.Errorf(prodlister.EINVALID, "fetcher required")
	}
	if s.Selectors.Product == "" || s.Selectors.Name == "" || s.Selectors.Price == "" {
		return nil, prodlister.Errorf(prodlister.EINVALID, "product, name and price selectors required")
	}
	base, err := parseBaseURL(s.PageURL)
	if err != nil {
		return nil, err
	}

	data, err := s.Fetcher.Fetch(ctx, s.PageURL, prodlister.KindHTML)
	if err != nil {
		return nil, err
	}
	doc, err := newDocument(data)
	if err != nil {
		return nil, err
	}

	catalog := &prodlister.Catalog{}

	doc.Find(s.Selectors.Product).Each(func(_ int, card *goquery.Selection) {
		nameSel := card.Find(s.Selectors.Name).First()
		priceSel := card.Find(s.Selectors.Price).First()
		if nameSel.Length() == 0 || priceSel.Length() == 0 {
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

		category := prodlister.DefaultCategory
		if s.Selectors.Category != "" {
			if cat := strings.TrimSpace(card.Find(s.Selectors.Category).First().Text()); cat != "" {
				category = cat
			}
		}

		var image string
		if s.Selectors.Image != "" {
			if src, exists := card.Find(s.Selectors.Image).First().Attr("src"); exists {
				image = resolveURL(base, src)
			}
		}

		// Link resolution falls back to the page URL itself when the card
		// contains no anchor.
		link := s.PageURL
		if href, exists := card.Find("a[href]").First().Attr("href"); exists {
			if resolved := resolveURL(base, href); resolved != "" {
				link = resolved
			}
		}

		catalog.Products = append(catalog.Products, prodlister.Product{
			Category: category,
			Name:     name,
			Price:    &price,
			URL:      link,
			Image:    image,
		})
	})

	return catalog, nil
}
