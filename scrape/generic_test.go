package scrape_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	prodlister "github.com/Plug0007/prod-lister"
	"github.com/Plug0007/prod-lister/mock"
	"github.com/Plug0007/prod-lister/scrape"
)

func staticFetcher(body string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(context.Context, string, prodlister.ContentKind) ([]byte, error) {
			return []byte(body), nil
		},
	}
}

func TestGeneric_Scrape(t *testing.T) {
	t.Parallel()

	selectors := scrape.Selectors{
		Product:  "li.card",
		Name:     ".title",
		Price:    ".price",
		Category: ".cat",
		Image:    "img.photo",
	}

	t.Run("extracts cards with all selectors", func(t *testing.T) {
		t.Parallel()

		page := `<html><body><ul>
			<li class="card">
				<a href="/items/lamp"><span class="title">Desk Lamp</span></a>
				<span class="price">₹1,299.50</span>
				<span class="cat">Lighting</span>
				<img class="photo" src="/img/lamp.jpg">
			</li>
		</ul></body></html>`

		s := &scrape.Generic{
			Fetcher:   staticFetcher(page),
			PageURL:   "https://demo.example.com/products",
			Selectors: selectors,
		}
		catalog, err := s.Scrape(context.Background())
		require.NoError(t, err)

		require.Len(t, catalog.Products, 1)
		p := catalog.Products[0]
		assert.Equal(t, "Lighting", p.Category)
		assert.Equal(t, "Desk Lamp", p.Name)
		require.NotNil(t, p.Price)
		assert.InDelta(t, 1299.50, *p.Price, 1e-9)
		assert.Equal(t, "https://demo.example.com/items/lamp", p.URL)
		assert.Equal(t, "https://demo.example.com/img/lamp.jpg", p.Image)
		require.NoError(t, p.Validate())
	})

	t.Run("card without a price match is excluded entirely", func(t *testing.T) {
		t.Parallel()

		page := `<html><body>
			<li class="card"><span class="title">Has Price</span><span class="price">₹10</span></li>
			<li class="card"><span class="title">No Price</span></li>
			<li class="card"><span class="title">Unpriceable</span><span class="price">Contact us</span></li>
		</body></html>`

		s := &scrape.Generic{
			Fetcher:   staticFetcher(page),
			PageURL:   "https://demo.example.com/products",
			Selectors: selectors,
		}
		catalog, err := s.Scrape(context.Background())
		require.NoError(t, err)

		require.Len(t, catalog.Products, 1)
		assert.Equal(t, "Has Price", catalog.Products[0].Name)
	})

	t.Run("optional selectors default when absent or non-matching", func(t *testing.T) {
		t.Parallel()

		page := `<html><body>
			<li class="card"><span class="title">Bare</span><span class="price">₹42</span></li>
		</body></html>`

		s := &scrape.Generic{
			Fetcher:   staticFetcher(page),
			PageURL:   "https://demo.example.com/products",
			Selectors: selectors,
		}
		catalog, err := s.Scrape(context.Background())
		require.NoError(t, err)

		require.Len(t, catalog.Products, 1)
		p := catalog.Products[0]
		assert.Equal(t, prodlister.DefaultCategory, p.Category)
		assert.Empty(t, p.Image)
		// No anchor in the card: the link falls back to the page URL.
		assert.Equal(t, "https://demo.example.com/products", p.URL)
	})

	t.Run("optional selectors may be left unset", func(t *testing.T) {
		t.Parallel()

		page := `<html><body>
			<li class="card"><span class="title">Minimal</span><span class="price">₹7</span></li>
		</body></html>`

		s := &scrape.Generic{
			Fetcher: staticFetcher(page),
			PageURL: "https://demo.example.com/products",
			Selectors: scrape.Selectors{
				Product: "li.card",
				Name:    ".title",
				Price:   ".price",
			},
		}
		catalog, err := s.Scrape(context.Background())
		require.NoError(t, err)

		require.Len(t, catalog.Products, 1)
		assert.Equal(t, prodlister.DefaultCategory, catalog.Products[0].Category)
	})

	t.Run("empty page yields empty output", func(t *testing.T) {
		t.Parallel()

		s := &scrape.Generic{
			Fetcher:   staticFetcher("<html><body></body></html>"),
			PageURL:   "https://demo.example.com/products",
			Selectors: selectors,
		}
		catalog, err := s.Scrape(context.Background())
		require.NoError(t, err)

		assert.Empty(t, catalog.Products)
		assert.Empty(t, catalog.Skips)
	})

	t.Run("missing required selector is a configuration error before any fetch", func(t *testing.T) {
		t.Parallel()

		s := &scrape.Generic{
			Fetcher: &mock.Fetcher{FetchFn: func(context.Context, string, prodlister.ContentKind) ([]byte, error) {
				t.Fatal("fetch should not be called")
				return nil, nil
			}},
			PageURL:   "https://demo.example.com/products",
			Selectors: scrape.Selectors{Product: "li.card", Name: ".title"},
		}
		_, err := s.Scrape(context.Background())
		require.Error(t, err)
		assert.Equal(t, prodlister.EINVALID, prodlister.ErrorCode(err))
	})
}
