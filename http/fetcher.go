// Package http provides the HTTP implementation of prodlister.Fetcher used
// by every adapter to retrieve catalogue pages, sitemaps, and per-product
// payloads.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	prodlister "github.com/Plug0007/prod-lister"
)

// DefaultFetchTimeout bounds every request issued by a Fetcher.
const DefaultFetchTimeout = 20 * time.Second

// DefaultUserAgent is the fixed identifying header sent with every request.
const DefaultUserAgent = "Mozilla/5.0 (compatible; EcommerceScraper/2.0)"

// Ensure Fetcher implements prodlister.Fetcher at compile time.
var _ prodlister.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves raw content from URLs using plain HTTP requests. It
// does not execute JavaScript and is suitable for static catalogues only.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (20s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the identifying User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the raw payload at the given URL. The kind selects the
// Accept header only. Transport errors and non-200 statuses are returned
// with code EUNAVAILABLE so callers can skip the unit and continue.
func (f *Fetcher) Fetch(ctx context.Context, url string, kind prodlister.ContentKind) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, prodlister.Errorf(prodlister.EINVALID, "invalid fetch URL %q: %v", url, err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", acceptHeader(kind))

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, prodlister.Errorf(prodlister.EUNAVAILABLE, "fetching %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, prodlister.Errorf(prodlister.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, prodlister.Errorf(prodlister.EUNAVAILABLE, "reading %s: %v", url, err)
	}

	return body, nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

func acceptHeader(kind prodlister.ContentKind) string {
	switch kind {
	case prodlister.KindXML:
		return "application/xml,text/xml;q=0.9,*/*;q=0.8"
	case prodlister.KindJSON:
		return "application/json,*/*;q=0.8"
	default:
		return "text/html,application/xhtml+xml,*/*;q=0.8"
	}
}
