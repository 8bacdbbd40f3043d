package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// Fallback values used when the catalog omits a field
const (
	UnknownAuthor = "Unknown Author"
	NotAvailable  = "N/A"
)

// Book is a normalized catalog entry (search result or favorite).
// Books are immutable once built; ID is the only identity.
type Book struct {
	ID               string `json:"id"`                           // Derived from Key, see BookID
	Key              string `json:"key"`                          // Raw catalog key, e.g. "/works/OL1W"
	Title            string `json:"title"`                        // Display title
	Author           string `json:"author"`                       // Authors joined by ", "
	CoverID          *int   `json:"coverId,omitempty"`            // Cover image identifier
	FirstPublishYear *int   `json:"first_publish_year,omitempty"` // Year of first publication
	Subjects         string `json:"subjects"`                     // First three subjects joined by ", "
	Languages        string `json:"languages"`                    // Upper-cased language codes
}

// BookID derives a stable identifier from a catalog key by replacing
// every rune that is not a letter or digit with an underscore.
func BookID(key string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, key)
}

// CoverURL builds the medium-size cover image URL for the book.
// Returns "" when the book has no cover.
func (b Book) CoverURL(coversBase string) string {
	if b.CoverID == nil {
		return ""
	}
	return fmt.Sprintf("%s/b/id/%d-M.jpg", strings.TrimRight(coversBase, "/"), *b.CoverID)
}

// Year returns the first publish year, or 0 when unknown
func (b Book) Year() int {
	if b.FirstPublishYear == nil {
		return 0
	}
	return *b.FirstPublishYear
}

// PageURL returns the catalog page of the book
func (b Book) PageURL(catalogBase string) string {
	if b.Key == "" {
		return ""
	}
	return strings.TrimRight(catalogBase, "/") + b.Key
}
