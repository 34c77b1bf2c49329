package showtimes

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"
)

// DefaultBaseURL is the listings site queried when no base URL is configured.
const DefaultBaseURL = "https://www.imdb.com"

// DateLayout is the calendar date format used in queries and reports.
const DateLayout = "2006-01-02"

// Country is a supported listings country code.
type Country string

// Supported countries.
const (
	CountryAR Country = "AR"
	CountryAU Country = "AU"
	CountryCA Country = "CA"
	CountryCL Country = "CL"
	CountryDE Country = "DE"
	CountryES Country = "ES"
	CountryFR Country = "FR"
	CountryIT Country = "IT"
	CountryMX Country = "MX"
	CountryNZ Country = "NZ"
	CountryPT Country = "PT"
	CountryUK Country = "UK"
	CountryUS Country = "US"
)

// Countries lists every supported country code.
var Countries = []Country{
	CountryAR, CountryAU, CountryCA, CountryCL, CountryDE, CountryES, CountryFR,
	CountryIT, CountryMX, CountryNZ, CountryPT, CountryUK, CountryUS,
}

// Valid reports whether c is a supported country code.
func (c Country) Valid() bool {
	return slices.Contains(Countries, c)
}

// Radius is a search radius in kilometers.
type Radius int

// Radii lists every radius the listings site groups cinemas by.
var Radii = []Radius{5, 10, 20, 30, 50}

// Valid reports whether r is one of the supported radii.
func (r Radius) Valid() bool {
	return slices.Contains(Radii, r)
}

// BoundaryPattern returns the text a group boundary carries for this radius.
// The trailing space keeps "Within 5 km " from matching "Within 50 km ".
func (r Radius) BoundaryPattern() string {
	return fmt.Sprintf("Within %d km ", int(r))
}

// NormalizeMode selects how raw showtime tokens are normalized.
type NormalizeMode string

// NormalizeMode constants.
const (
	// ModeClock24 converts every showtime to canonical 24-hour HH:MM.
	ModeClock24 NormalizeMode = "24h"

	// ModeSuffixCarry keeps 12-hour notation and propagates the last
	// explicit am/pm suffix to the following unmarked times.
	ModeSuffixCarry NormalizeMode = "carry"
)

// Valid reports whether m is a known mode. The empty mode means ModeClock24.
func (m NormalizeMode) Valid() bool {
	return m == "" || m == ModeClock24 || m == ModeSuffixCarry
}

// Query holds the parameters of one listings lookup.
type Query struct {
	Country Country
	Zip     string
	Radius  Radius
	Date    string // YYYY-MM-DD
	Mode    NormalizeMode
}

// Validate returns an error if the query contains invalid fields.
func (q Query) Validate() error {
	if !q.Country.Valid() {
		return Errorf(EINVALID, "unsupported country %q", q.Country)
	}
	if strings.TrimSpace(q.Zip) == "" {
		return Errorf(EINVALID, "zip code required")
	}
	if !q.Radius.Valid() {
		return Errorf(EINVALID, "unsupported radius %d", q.Radius)
	}
	if _, err := time.Parse(DateLayout, q.Date); err != nil {
		return Errorf(EINVALID, "date must be formatted YYYY-MM-DD: %q", q.Date)
	}
	if !q.Mode.Valid() {
		return Errorf(EINVALID, "unknown normalize mode %q", q.Mode)
	}
	return nil
}

// URL builds the listings page URL for the query against baseURL.
// An empty baseURL means DefaultBaseURL.
func (q Query) URL(baseURL string) string {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return fmt.Sprintf("%s/showtimes/%s/%s/%s?ref_=sh_dt",
		strings.TrimSuffix(baseURL, "/"), q.Country, url.PathEscape(q.Zip), q.Date)
}
