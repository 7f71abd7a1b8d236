// Package sitesearch provides the enhancement layer of a small static
// website: full-text search over the site's own pages, string substitution
// for a handful of display languages, and a page outline built from headings.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, koanf/).
package sitesearch
