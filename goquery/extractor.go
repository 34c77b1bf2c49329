// Package goquery implements showtimes.ListingExtractor using CSS selectors
// over the parsed HTML tree.
package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/showtimes"
)

// Selectors names the parts of a listings page the extractor reads.
type Selectors struct {
	Root          string // listing container, children are boundaries or entries
	BoundaryClass string // exact class attribute of group boundary children
	CinemaName    string
	MovieItem     string
	MovieTitle    string
	Showtimes     string
	Address       string
}

// DefaultSelectors matches the IMDb showtimes markup.
var DefaultSelectors = Selectors{
	Root:          "#cinemas-at-list",
	BoundaryClass: "li_group",
	CinemaName:    ".fav_box",
	MovieItem:     ".list_item",
	MovieTitle:    `span[itemprop="name"]`,
	Showtimes:     ".showtimes",
	Address:       ".address",
}

// Ensure Extractor implements showtimes.ListingExtractor at compile time.
var _ showtimes.ListingExtractor = (*Extractor)(nil)

// Extractor extracts cinema listings from a showtimes page.
type Extractor struct {
	selectors Selectors
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSelectors overrides DefaultSelectors.
func WithSelectors(s Selectors) Option {
	return func(e *Extractor) {
		e.selectors = s
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{selectors: DefaultSelectors}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// listingNode is a child of the listing root, classified once.
type listingNode interface {
	listingNode()
}

// groupBoundary delimits a distance bucket, e.g. "Within 10 km of 3003".
type groupBoundary struct {
	text string
}

// cinemaEntry holds one cinema and its movies.
type cinemaEntry struct {
	sel *goquery.Selection
}

func (groupBoundary) listingNode() {}
func (cinemaEntry) listingNode()   {}

// Extract walks the listing root's children in document order and stops at
// the first group boundary for opts.Radius.
func (e *Extractor) Extract(src string, opts showtimes.ExtractOptions) (*showtimes.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return nil, showtimes.Errorf(showtimes.EINVALID, "failed to parse HTML: %v", err)
	}

	root := doc.Find(e.selectors.Root).First()
	if root.Length() == 0 {
		return nil, showtimes.Errorf(showtimes.EMISSINGROOT, "listing container %q not found", e.selectors.Root)
	}

	pattern := opts.Radius.BoundaryPattern()
	result := &showtimes.ExtractResult{Cinemas: []*showtimes.Cinema{}}

	children := root.Children()
	for i := range children.Nodes {
		switch n := e.classify(children.Eq(i)).(type) {
		case groupBoundary:
			if strings.Contains(n.text, pattern) {
				result.Stopped = true
				result.Boundary = n.text
				return result, nil
			}
		case cinemaEntry:
			cinema, err := e.extractCinema(n.sel, opts.Mode)
			if err != nil {
				return nil, fmt.Errorf("cinema %d: %w", len(result.Cinemas)+1, err)
			}
			result.Cinemas = append(result.Cinemas, cinema)
		}
	}

	return result, nil
}

func (e *Extractor) classify(sel *goquery.Selection) listingNode {
	if class, _ := sel.Attr("class"); class == e.selectors.BoundaryClass {
		return groupBoundary{text: strings.TrimSpace(sel.Text())}
	}
	return cinemaEntry{sel: sel}
}

func (e *Extractor) extractCinema(sel *goquery.Selection, mode showtimes.NormalizeMode) (*showtimes.Cinema, error) {
	cinema := &showtimes.Cinema{
		Name:   strings.TrimSpace(sel.Find(e.selectors.CinemaName).Text()),
		Movies: []*showtimes.Movie{},
	}

	var err error
	sel.Find(e.selectors.MovieItem).EachWithBreak(func(_ int, item *goquery.Selection) bool {
		movie := &showtimes.Movie{
			Title: strings.TrimSpace(item.Find(e.selectors.MovieTitle).Text()),
		}
		movie.Showtimes, err = showtimes.ParseShowtimes(item.Find(e.selectors.Showtimes).Text(), mode)
		if err != nil {
			err = fmt.Errorf("%q movie %q: %w", cinema.Name, movie.Title, err)
			return false
		}
		cinema.Movies = append(cinema.Movies, movie)
		return true
	})
	if err != nil {
		return nil, err
	}

	cinema.Address, cinema.Phone = showtimes.SplitAddress(sel.Find(e.selectors.Address).Children().Text())
	if cinema.Address == "" && (cinema.Name != "" || len(cinema.Movies) > 0) {
		return nil, showtimes.Errorf(showtimes.EINVALID, "cinema %q has no address", cinema.Name)
	}
	return cinema, nil
}
