package prodlister

import "context"

// ContentKind tells a Fetcher what the caller intends to parse the payload
// as. It selects the Accept header only; fetch behaviour is otherwise
// identical across kinds.
type ContentKind int

const (
	KindHTML ContentKind = iota
	KindXML
	KindJSON
)

// Fetcher performs a single retrieval of a URL with a fixed identifying
// header and a bounded timeout.
type Fetcher interface {
	// Fetch retrieves the raw payload at url. A network error, timeout, or
	// non-success status yields an error that callers treat as recoverable
	// at page or record granularity, never as process-fatal.
	Fetch(ctx context.Context, url string, kind ContentKind) ([]byte, error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
