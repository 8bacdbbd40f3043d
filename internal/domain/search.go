package domain

import "strings"

// SearchMode selects which catalog field a query targets
type SearchMode int

const (
	ModeTitle SearchMode = iota
	ModeSubject
	ModeAuthor
	ModeLanguage
)

// SearchModes lists every mode in display order
var SearchModes = []SearchMode{ModeTitle, ModeSubject, ModeAuthor, ModeLanguage}

// Param returns the search.json query parameter for the mode
func (m SearchMode) Param() string {
	switch m {
	case ModeSubject:
		return "subject"
	case ModeAuthor:
		return "author"
	case ModeLanguage:
		return "language"
	default:
		return "title"
	}
}

// String returns the mode's canonical name
func (m SearchMode) String() string {
	return m.Param()
}

// Label returns the human-facing name of the mode
func (m SearchMode) Label() string {
	switch m {
	case ModeSubject:
		return "Genre"
	case ModeAuthor:
		return "Author"
	case ModeLanguage:
		return "Language"
	default:
		return "Title"
	}
}

// Next cycles to the following mode, wrapping around
func (m SearchMode) Next() SearchMode {
	return SearchModes[(int(m)+1)%len(SearchModes)]
}

// ParseSearchMode converts a mode name to a SearchMode.
// Unknown names fall back to ModeTitle.
func ParseSearchMode(s string) SearchMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "subject", "genre":
		return ModeSubject
	case "author":
		return ModeAuthor
	case "language":
		return ModeLanguage
	default:
		return ModeTitle
	}
}

// View identifies which list the presentation layer shows
type View int

const (
	ViewSearch View = iota
	ViewFavorites
)

// String returns the view's name
func (v View) String() string {
	if v == ViewFavorites {
		return "favorites"
	}
	return "search"
}

// Outcome is the settlement of a catalog search: Results, EmptyResult or Failure
type Outcome interface {
	outcome()
}

// Results carries the normalized books of a successful search
type Results struct {
	Books []Book
}

// EmptyResult reports a successful search that matched nothing
type EmptyResult struct {
	Message string
}

// Failure reports a search that could not be completed
type Failure struct {
	Message string
	Err     error
}

func (Results) outcome()     {}
func (EmptyResult) outcome() {}
func (Failure) outcome()     {}

// Error implements the error interface
func (f Failure) Error() string {
	if f.Err != nil {
		return f.Message + ": " + f.Err.Error()
	}
	return f.Message
}

// Unwrap exposes the underlying cause
func (f Failure) Unwrap() error {
	return f.Err
}
