package domain

import "context"

// Catalog searches the remote bibliographic catalog.
// Implementations issue exactly one request per call and return books in source order.
type Catalog interface {
	Search(ctx context.Context, mode SearchMode, query string) ([]Book, error)
}

// KV is a durable key-value slot.
// Get reports false when the key has never been written.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
}
