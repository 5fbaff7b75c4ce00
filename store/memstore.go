package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemStore is an in-memory Store used by the tests. It mirrors the
// MongoStore contract, including ServerTimestamp resolution and
// last-write-wins updates.
type MemStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]M
}

func NewMemStore() *MemStore {
	return &MemStore{collections: make(map[string]map[string]M)}
}

func (s *MemStore) Get(ctx context.Context, collection, key string) (M, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.collections[collection][key]
	if !ok {
		return nil, ErrNotFound
	}
	return copyMap(doc), nil
}

func (s *MemStore) Set(ctx context.Context, collection, key string, fields M, merge bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll := s.coll(collection)
	resolved := resolveTimestamps(fields)
	if merge {
		if existing, ok := coll[key]; ok {
			for k, v := range resolved {
				existing[k] = copyValue(v)
			}
			return nil
		}
	}
	coll[key] = copyMap(resolved)
	return nil
}

func (s *MemStore) Update(ctx context.Context, collection, key string, fields M) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.collections[collection][key]
	if !ok {
		return ErrNotFound
	}
	for k, v := range resolveTimestamps(fields) {
		doc[k] = v
	}
	return nil
}

func (s *MemStore) Delete(ctx context.Context, collection, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collections[collection][key]; !ok {
		return ErrNotFound
	}
	delete(s.collections[collection], key)
	return nil
}

func (s *MemStore) Add(ctx context.Context, collection string, fields M) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := primitive.NewObjectID().Hex()
	s.coll(collection)[key] = copyMap(resolveTimestamps(fields))
	return key, nil
}

func (s *MemStore) Query(ctx context.Context, collection string, filter M, opts QueryOpts) ([]Doc, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var docs []Doc
	for key, doc := range s.collections[collection] {
		if matches(doc, filter) {
			docs = append(docs, Doc{ID: key, Fields: copyMap(doc)})
		}
	}

	if opts.SortBy != "" {
		sort.SliceStable(docs, func(i, j int) bool {
			less := lessValue(docs[i].Fields[opts.SortBy], docs[j].Fields[opts.SortBy])
			if opts.Descending {
				return !less && !equalValue(docs[i].Fields[opts.SortBy], docs[j].Fields[opts.SortBy])
			}
			return less
		})
	}
	if opts.Limit > 0 && int64(len(docs)) > opts.Limit {
		docs = docs[:opts.Limit]
	}
	return docs, nil
}

func (s *MemStore) coll(collection string) map[string]M {
	coll, ok := s.collections[collection]
	if !ok {
		coll = make(map[string]M)
		s.collections[collection] = coll
	}
	return coll
}

func matches(doc, filter M) bool {
	for k, want := range filter {
		if !equalValue(doc[k], want) {
			return false
		}
	}
	return true
}

func equalValue(a, b any) bool {
	if at, ok := a.(time.Time); ok {
		bt, ok := b.(time.Time)
		return ok && at.Equal(bt)
	}
	return a == b
}

func lessValue(a, b any) bool {
	switch av := a.(type) {
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Before(bv)
		}
	case int:
		if bv, ok := b.(int); ok {
			return av < bv
		}
	case int64:
		if bv, ok := b.(int64); ok {
			return av < bv
		}
	case float64:
		if bv, ok := b.(float64); ok {
			return av < bv
		}
	case string:
		if bv, ok := b.(string); ok {
			return av < bv
		}
	}
	return false
}

func copyMap(in M) M {
	out := make(M, len(in))
	for k, v := range in {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch val := v.(type) {
	case M:
		return copyMap(val)
	case []any:
		s := make([]any, len(val))
		for i, e := range val {
			s[i] = copyValue(e)
		}
		return s
	default:
		return v
	}
}
