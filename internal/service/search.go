package service

import (
	"context"
	"log/slog"

	"github.com/mmcdole/bookfinder/internal/domain"
)

// MaxResults is the number of catalog docs kept per search
const MaxResults = 10

// NetworkFailureMessage is shown for any transport or status failure
const NetworkFailureMessage = "Failed to fetch books. Please check your network connection."

// NoResultsMessage returns the message shown when a query matches nothing
func NoResultsMessage(query string) string {
	return `No books found for "` + query + `". Try a different search.`
}

// SearchService runs catalog queries and classifies their outcome
type SearchService struct {
	catalog domain.Catalog
	logger  *slog.Logger
}

// NewSearchService creates a new search service
func NewSearchService(catalog domain.Catalog, logger *slog.Logger) *SearchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SearchService{
		catalog: catalog,
		logger:  logger,
	}
}

// Execute issues exactly one catalog request for query in the given mode.
// Callers must not pass a blank query; the controller filters those out.
func (s *SearchService) Execute(ctx context.Context, query string, mode domain.SearchMode) domain.Outcome {
	s.logger.Debug("searching", "query", query, "mode", mode.String())

	books, err := s.catalog.Search(ctx, mode, query)
	if err != nil {
		s.logger.Warn("search failed", "query", query, "mode", mode.String(), "error", err)
		return domain.Failure{Message: NetworkFailureMessage, Err: err}
	}

	if len(books) == 0 {
		s.logger.Debug("search returned no books", "query", query)
		return domain.EmptyResult{Message: NoResultsMessage(query)}
	}

	if len(books) > MaxResults {
		books = books[:MaxResults]
	}

	s.logger.Debug("search complete", "query", query, "results", len(books))
	return domain.Results{Books: books}
}
