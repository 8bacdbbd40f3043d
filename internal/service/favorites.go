package service

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mmcdole/bookfinder/internal/domain"
)

// DefaultFavoritesKey is the durable slot holding the favorites collection
const DefaultFavoritesKey = "book-finder-favorites"

// FavoritesService owns the persisted, ordered favorites collection.
// Membership and removal go by Book.ID only.
type FavoritesService struct {
	kv     domain.KV
	key    string
	logger *slog.Logger

	mu    sync.RWMutex
	books []domain.Book
}

// NewFavoritesService creates a favorites service persisting under key.
// An empty key uses DefaultFavoritesKey.
func NewFavoritesService(kv domain.KV, key string, logger *slog.Logger) *FavoritesService {
	if logger == nil {
		logger = slog.Default()
	}
	if key == "" {
		key = DefaultFavoritesKey
	}
	return &FavoritesService{
		kv:     kv,
		key:    key,
		logger: logger,
		books:  []domain.Book{},
	}
}

// Load reads the collection from storage, replacing the in-memory copy.
// Missing or malformed data yields an empty collection.
func (s *FavoritesService) Load() []domain.Book {
	books, err := s.read()
	if err != nil {
		s.logger.Warn("discarding persisted favorites", "key", s.key, "error", err)
		books = []domain.Book{}
	}

	s.mu.Lock()
	s.books = books
	s.mu.Unlock()

	s.logger.Debug("loaded favorites", "count", len(books))
	return copyBooks(books)
}

func (s *FavoritesService) read() ([]domain.Book, error) {
	data, ok, err := s.kv.Get(s.key)
	if err != nil {
		return nil, err
	}
	if !ok || len(data) == 0 {
		return []domain.Book{}, nil
	}

	var books []domain.Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedFavorites, err)
	}
	if books == nil {
		books = []domain.Book{}
	}
	return books, nil
}

// Favorites returns a copy of the collection in insertion order
func (s *FavoritesService) Favorites() []domain.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyBooks(s.books)
}

// IsFavorite reports whether a book with id is in the collection
func (s *FavoritesService) IsFavorite(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return IsFavorite(s.books, id)
}

// Toggle removes book when present, appends it otherwise, and persists the result
// before returning. It never fails; a write error is logged and the in-memory
// collection keeps the change.
func (s *FavoritesService) Toggle(book domain.Book) []domain.Book {
	s.mu.Lock()
	s.books = Toggle(s.books, book)
	books := copyBooks(s.books)
	s.mu.Unlock()

	if err := s.persist(books); err != nil {
		s.logger.Error("failed to persist favorites", "key", s.key, "error", err)
	}

	s.logger.Debug("toggled favorite", "id", book.ID, "count", len(books))
	return books
}

func (s *FavoritesService) persist(books []domain.Book) error {
	data, err := json.Marshal(books)
	if err != nil {
		return err
	}
	return s.kv.Set(s.key, data)
}

// IsFavorite reports whether collection contains a book with id
func IsFavorite(collection []domain.Book, id string) bool {
	for _, b := range collection {
		if b.ID == id {
			return true
		}
	}
	return false
}

// Toggle returns a new collection with book removed (matched by ID) when present,
// or appended at the end otherwise. The input slice is never modified.
func Toggle(collection []domain.Book, book domain.Book) []domain.Book {
	if IsFavorite(collection, book.ID) {
		out := make([]domain.Book, 0, len(collection)-1)
		for _, b := range collection {
			if b.ID != book.ID {
				out = append(out, b)
			}
		}
		return out
	}

	out := make([]domain.Book, 0, len(collection)+1)
	out = append(out, collection...)
	return append(out, book)
}

func copyBooks(books []domain.Book) []domain.Book {
	out := make([]domain.Book, len(books))
	copy(out, books)
	return out
}
