package slog_test

import (
	"bytes"
	"context"
	"errors"
	stdslog "log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	prodlister "github.com/Plug0007/prod-lister"
	"github.com/Plug0007/prod-lister/mock"
	prodslog "github.com/Plug0007/prod-lister/slog"
)

func newLogger(buf *bytes.Buffer) *stdslog.Logger {
	return stdslog.New(stdslog.NewTextHandler(buf, &stdslog.HandlerOptions{Level: stdslog.LevelDebug}))
}

func TestScraper_Scrape(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs outcome", func(t *testing.T) {
		t.Parallel()

		want := &prodlister.Catalog{
			Products: []prodlister.Product{{Name: "Blue Tee", URL: "https://s.example.com/p/a"}},
			Skips:    []prodlister.Skip{{Unit: "page 3", Reason: "connection reset"}},
		}
		next := &mock.Scraper{ScrapeFn: func(context.Context) (*prodlister.Catalog, error) {
			return want, nil
		}}

		var buf bytes.Buffer
		s := prodslog.NewScraper(next, newLogger(&buf), "woocommerce")

		got, err := s.Scrape(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want, got)

		out := buf.String()
		assert.Contains(t, out, "source=woocommerce")
		assert.Contains(t, out, "products=1")
		assert.Contains(t, out, "skips=1")
		assert.Contains(t, out, "unit=\"page 3\"")
	})

	t.Run("logs and propagates errors", func(t *testing.T) {
		t.Parallel()

		next := &mock.Scraper{ScrapeFn: func(context.Context) (*prodlister.Catalog, error) {
			return nil, errors.New("boom")
		}}

		var buf bytes.Buffer
		s := prodslog.NewScraper(next, newLogger(&buf), "shopify")

		_, err := s.Scrape(context.Background())
		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=boom")
	})
}

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	next := &mock.Fetcher{FetchFn: func(context.Context, string, prodlister.ContentKind) ([]byte, error) {
		return []byte("payload"), nil
	}}

	var buf bytes.Buffer
	f := prodslog.NewFetcher(next, newLogger(&buf))

	body, err := f.Fetch(context.Background(), "https://s.example.com/sitemap.xml", prodlister.KindXML)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(body))

	out := buf.String()
	assert.Contains(t, out, "url=https://s.example.com/sitemap.xml")
	assert.Contains(t, out, "bytes=7")
	require.NoError(t, f.Close())
}
