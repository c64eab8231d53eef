package mock

import (
	"context"

	prodlister "github.com/Plug0007/prod-lister"
)

var _ prodlister.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of prodlister.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string, kind prodlister.ContentKind) ([]byte, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string, kind prodlister.ContentKind) ([]byte, error) {
	return f.FetchFn(ctx, url, kind)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
