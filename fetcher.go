package showtimes

import "context"

// Fetcher retrieves the HTML of a listings page.
type Fetcher interface {
	// Fetch retrieves the document at url.
	// Returns ENOTFOUND if the page does not exist.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases fetcher resources.
	Close() error
}
