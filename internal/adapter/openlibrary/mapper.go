package openlibrary

import (
	"strings"

	"github.com/mmcdole/bookfinder/internal/domain"
)

// maxSubjects caps how many subject tags are kept per book
const maxSubjects = 3

// MapBooks converts search docs to domain books, preserving order
func MapBooks(docs []Doc) []domain.Book {
	books := make([]domain.Book, 0, len(docs))
	for _, d := range docs {
		books = append(books, MapBook(d))
	}
	return books
}

// MapBook converts a single search doc to a domain book
func MapBook(d Doc) domain.Book {
	book := domain.Book{
		ID:        domain.BookID(d.Key),
		Key:       d.Key,
		Title:     d.Title,
		Author:    domain.UnknownAuthor,
		Subjects:  domain.NotAvailable,
		Languages: domain.NotAvailable,
	}

	if len(d.AuthorName) > 0 {
		book.Author = strings.Join(d.AuthorName, ", ")
	}

	if len(d.Subject) > 0 {
		subjects := d.Subject
		if len(subjects) > maxSubjects {
			subjects = subjects[:maxSubjects]
		}
		book.Subjects = strings.Join(subjects, ", ")
	}

	if len(d.Language) > 0 {
		book.Languages = strings.ToUpper(strings.Join(d.Language, ", "))
	}

	// Copy optional values so books never share pointers with the decoded doc
	if d.CoverI != nil {
		cover := *d.CoverI
		book.CoverID = &cover
	}
	if d.FirstPublishYear != nil {
		year := *d.FirstPublishYear
		book.FirstPublishYear = &year
	}

	return book
}
