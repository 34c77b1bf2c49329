package showtimes

// ExtractOptions configures one extraction pass.
type ExtractOptions struct {
	// Radius selects the distance bucket whose boundary ends the listing.
	Radius Radius

	// Mode selects showtime normalization. Empty means ModeClock24.
	Mode NormalizeMode
}

// ExtractResult holds the cinemas extracted from a listings page.
type ExtractResult struct {
	// Cinemas are in document order.
	Cinemas []*Cinema

	// Stopped is true when a group boundary matching the radius ended the
	// pass. When false the whole listing was consumed.
	Stopped bool

	// Boundary is the trimmed text of the matching boundary, if any.
	Boundary string
}

// ListingExtractor extracts cinemas and showtimes from a listings page.
type ListingExtractor interface {
	// Extract parses raw HTML and returns the cinemas that precede the
	// boundary for opts.Radius.
	// Returns EMISSINGROOT if the page has no listing container and
	// EMALFORMEDTIME if any showtime cannot be normalized. No partial
	// result is returned on error.
	Extract(html string, opts ExtractOptions) (*ExtractResult, error)
}
