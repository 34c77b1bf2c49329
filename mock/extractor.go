package mock

import "github.com/fwojciec/showtimes"

var _ showtimes.ListingExtractor = (*ListingExtractor)(nil)

// ListingExtractor is a mock implementation of showtimes.ListingExtractor.
type ListingExtractor struct {
	ExtractFn func(html string, opts showtimes.ExtractOptions) (*showtimes.ExtractResult, error)
}

func (e *ListingExtractor) Extract(html string, opts showtimes.ExtractOptions) (*showtimes.ExtractResult, error) {
	return e.ExtractFn(html, opts)
}
