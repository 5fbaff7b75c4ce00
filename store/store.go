package store

import (
	"context"
	"errors"
)

// M is the field map of a single document.
type M = map[string]any

// Doc is one stored document together with its collection key.
type Doc struct {
	ID     string
	Fields M
}

// ErrNotFound is returned when the requested document does not exist.
var ErrNotFound = errors.New("document not found")

type serverTimestamp struct{}

// ServerTimestamp is a sentinel field value. Implementations replace it
// with the current server time when the document is written.
var ServerTimestamp = serverTimestamp{}

// QueryOpts controls ordering and result size for Query.
type QueryOpts struct {
	SortBy     string
	Descending bool
	Limit      int64
}

// Store is the document store the whole backend runs against: collections
// of documents addressed by string keys, with server-assigned keys for Add.
type Store interface {
	Get(ctx context.Context, collection, key string) (M, error)
	Set(ctx context.Context, collection, key string, fields M, merge bool) error
	Update(ctx context.Context, collection, key string, fields M) error
	Delete(ctx context.Context, collection, key string) error
	Add(ctx context.Context, collection string, fields M) (string, error)
	Query(ctx context.Context, collection string, filter M, opts QueryOpts) ([]Doc, error)
}
