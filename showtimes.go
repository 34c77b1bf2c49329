// Package showtimes extracts cinema and showtime listings from a cinema
// listings page for a country, postal code, radius and date, and emits a
// normalized report.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, rod/).
package showtimes
