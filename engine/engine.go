package engine

import (
	"context"
)

// Engine is the interface that all fetch engines must implement.
type Engine interface {
	// Name returns the engine identifier (e.g. "http", "http-chrome").
	Name() string

	// Fetch issues a single GET for the request. A non-2xx response is
	// not an error; transport failures are.
	Fetch(ctx context.Context, req *FetchRequest) (*FetchResult, error)
}

// FetchRequest contains everything an engine needs to fetch a page.
type FetchRequest struct {
	URL string
}

// FetchResult is the raw upstream answer.
type FetchResult struct {
	Body       string
	StatusCode int
	FinalURL   string
	EngineName string
}

// OK reports whether the upstream answered with a 2xx status.
func (r *FetchResult) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
