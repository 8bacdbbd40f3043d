package service

import (
	"sort"
	"strings"

	lfuzzy "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/bookfinder/internal/domain"
	"github.com/sahilm/fuzzy"
)

// bookIndex implements sahilm/fuzzy.Source over title and author
type bookIndex struct {
	books []domain.Book
	keys  []string // Pre-computed lowercase "title author" strings
}

func newBookIndex(books []domain.Book) *bookIndex {
	keys := make([]string, len(books))
	for i, b := range books {
		keys[i] = strings.ToLower(b.Title + " " + b.Author)
	}
	return &bookIndex{books: books, keys: keys}
}

// String returns the search key at index i (implements fuzzy.Source)
func (idx *bookIndex) String(i int) string { return idx.keys[i] }

// Len returns the number of books (implements fuzzy.Source)
func (idx *bookIndex) Len() int { return len(idx.books) }

// FilterFavorites returns the books whose title or author fuzzy-match query.
// Matches keep the collection's order; an empty query returns every book.
func FilterFavorites(books []domain.Book, query string) []domain.Book {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return books
	}

	matches := fuzzy.FindFrom(query, newBookIndex(books))
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Index < matches[j].Index
	})

	out := make([]domain.Book, 0, len(matches))
	for _, m := range matches {
		out = append(out, books[m.Index])
	}
	return out
}

// FindFavorite resolves ref to a book in collection. An exact ID wins;
// otherwise the title closest to ref (case-insensitive, by edit distance) is used.
func FindFavorite(collection []domain.Book, ref string) (domain.Book, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return domain.Book{}, false
	}
	for _, b := range collection {
		if b.ID == ref {
			return b, true
		}
	}

	titles := make([]string, len(collection))
	for i, b := range collection {
		titles[i] = b.Title
	}

	matches := lfuzzy.RankFindFold(ref, titles)
	if len(matches) == 0 {
		return domain.Book{}, false
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].OriginalIndex < matches[j].OriginalIndex
	})
	return collection[matches[0].OriginalIndex], true
}
