package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerTimestampResolvedOnWrite(t *testing.T) {
	t.Parallel()

	mem := NewMemStore()
	ctx := context.Background()

	before := time.Now().UTC()
	key, err := mem.Add(ctx, "orders", M{"created_at": ServerTimestamp, "status": "cooking"})
	require.NoError(t, err)
	after := time.Now().UTC()

	fields, err := mem.Get(ctx, "orders", key)
	require.NoError(t, err)

	stamped, ok := fields["created_at"].(time.Time)
	require.True(t, ok, "sentinel must be replaced with a real time")
	assert.False(t, stamped.Before(before))
	assert.False(t, stamped.After(after))
	assert.Equal(t, "cooking", fields["status"])
}

func TestSetMergeAndReplace(t *testing.T) {
	t.Parallel()

	mem := NewMemStore()
	ctx := context.Background()

	require.NoError(t, mem.Set(ctx, "store_settings", "main", M{"name": "stall", "open": true}, false))
	require.NoError(t, mem.Set(ctx, "store_settings", "main", M{"open": false}, true))

	fields, err := mem.Get(ctx, "store_settings", "main")
	require.NoError(t, err)
	assert.Equal(t, "stall", fields["name"], "merge keeps untouched fields")
	assert.Equal(t, false, fields["open"])

	require.NoError(t, mem.Set(ctx, "store_settings", "main", M{"open": true}, false))
	fields, err = mem.Get(ctx, "store_settings", "main")
	require.NoError(t, err)
	_, ok := fields["name"]
	assert.False(t, ok, "replace drops old fields")
}

func TestUpdateAndDeleteMissing(t *testing.T) {
	t.Parallel()

	mem := NewMemStore()
	ctx := context.Background()

	assert.ErrorIs(t, mem.Update(ctx, "orders", "ghost", M{"status": "ready"}), ErrNotFound)
	assert.ErrorIs(t, mem.Delete(ctx, "orders", "ghost"), ErrNotFound)
	_, err := mem.Get(ctx, "orders", "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestQueryFilterSortLimit(t *testing.T) {
	t.Parallel()

	mem := NewMemStore()
	ctx := context.Background()

	base := time.Date(2025, 9, 13, 9, 0, 0, 0, time.UTC)
	for i, ticket := range []string{"1111", "2222", "1111"} {
		_, err := mem.Add(ctx, "orders", M{
			"ticket_number": ticket,
			"created_at":    base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	docs, err := mem.Query(ctx, "orders", M{"ticket_number": "1111"}, QueryOpts{})
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	docs, err = mem.Query(ctx, "orders", M{"ticket_number": "1111"},
		QueryOpts{SortBy: "created_at", Descending: true, Limit: 1})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, base.Add(2*time.Minute), docs[0].Fields["created_at"])

	docs, err = mem.Query(ctx, "orders", nil, QueryOpts{SortBy: "created_at"})
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, base, docs[0].Fields["created_at"])
}

func TestGetReturnsCopies(t *testing.T) {
	t.Parallel()

	mem := NewMemStore()
	ctx := context.Background()

	require.NoError(t, mem.Set(ctx, "items", "yakisoba", M{"price": 500}, false))

	fields, err := mem.Get(ctx, "items", "yakisoba")
	require.NoError(t, err)
	fields["price"] = 9999

	again, err := mem.Get(ctx, "items", "yakisoba")
	require.NoError(t, err)
	assert.Equal(t, 500, again["price"])
}
