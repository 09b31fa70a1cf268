package jobs

import (
	"net/url"
	"strings"

	"jobscrawler/internal/extractor"
)

const (
	// baseURL prefixes relative listing links.
	baseURL    = "https://www.google.com"
	resultsURL = baseURL + "/about/careers/applications/jobs/results/"
)

// Listing is one job search result. A nil field means the page did not
// carry that value for this listing.
type Listing struct {
	Title    *string `json:"title"`
	Location *string `json:"location"`
	URL      *string `json:"url"`
}

// Schema returns the extraction schema for the Google Careers results page.
// Each listing is an <li> wrapping a WpHeLc link; title, location and the
// link itself live in fixed classed elements inside it.
func Schema() extractor.Schema {
	return extractor.Schema{
		Name:         "Google Job Listings",
		BaseSelector: "li:has(a.WpHeLc)",
		Fields: []extractor.FieldSpec{
			{Name: "title", Selector: "h3.QJPWVe", Kind: extractor.KindText},
			{Name: "location", Selector: "span.r0wTof", Kind: extractor.KindText},
			{Name: "url", Selector: "a.WpHeLc", Kind: extractor.KindAttribute, Attribute: "href"},
		},
	}
}

// SearchURL builds the results page URL for a search query.
func SearchURL(query string) string {
	return resultsURL + "?q=" + url.QueryEscape(query)
}

// NormalizeURL makes relative listing links absolute. Absolute links pass
// through unchanged, so applying it twice is safe.
func NormalizeURL(u string) string {
	if strings.HasPrefix(u, "/") {
		return baseURL + u
	}
	return u
}

// FromRecords converts raw extraction records into listings, normalizing
// relative URLs. Output order follows the input.
func FromRecords(records []extractor.Record) []Listing {
	listings := make([]Listing, 0, len(records))
	for _, rec := range records {
		l := Listing{
			Title:    rec["title"],
			Location: rec["location"],
			URL:      rec["url"],
		}
		if l.URL != nil {
			n := NormalizeURL(*l.URL)
			l.URL = &n
		}
		listings = append(listings, l)
	}
	return listings
}
