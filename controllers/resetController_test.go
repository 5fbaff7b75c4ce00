package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/models"
	"github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/store"
)

func seedEventData(t *testing.T, mem *store.MemStore) {
	t.Helper()
	ctx := context.Background()

	_, err := mem.Add(ctx, orderCollection, store.M{"ticket_number": "0001"})
	require.NoError(t, err)
	require.NoError(t, mem.Set(ctx, itemCollection, "A01", store.M{"name": "yakisoba"}, false))
	_, err = mem.Add(ctx, signageCollection, store.M{"url": "a.png"})
	require.NoError(t, err)
	require.NoError(t, mem.Set(ctx, userCollection, "boss", store.M{"role": models.RoleSuperadmin}, false))
	require.NoError(t, mem.Set(ctx, userCollection, "tanaka", store.M{"role": models.RoleStaff}, false))
}

func countDocs(t *testing.T, mem *store.MemStore, collection string) int {
	t.Helper()
	docs, err := mem.Query(context.Background(), collection, nil, store.QueryOpts{})
	require.NoError(t, err)
	return len(docs)
}

func TestResetDataKeepsUsers(t *testing.T) {
	mem := store.NewMemStore()
	c := &ResetController{Store: mem}
	seedEventData(t, mem)

	req := httptest.NewRequest(http.MethodPost, "/api/reset_data", nil)
	req = withPrincipal(req, "boss", models.RoleSuperadmin)
	rec := httptest.NewRecorder()
	c.ResetData(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Zero(t, countDocs(t, mem, orderCollection))
	assert.Zero(t, countDocs(t, mem, itemCollection))
	assert.Zero(t, countDocs(t, mem, signageCollection))
	assert.Equal(t, 2, countDocs(t, mem, userCollection))
}

func TestResetAllKeepsOnlyCaller(t *testing.T) {
	mem := store.NewMemStore()
	c := &ResetController{Store: mem}
	seedEventData(t, mem)

	req := httptest.NewRequest(http.MethodPost, "/api/reset_all", nil)
	req = withPrincipal(req, "boss", models.RoleSuperadmin)
	rec := httptest.NewRecorder()
	c.ResetAll(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Zero(t, countDocs(t, mem, orderCollection))
	require.Equal(t, 1, countDocs(t, mem, userCollection))
	_, err := mem.Get(context.Background(), userCollection, "boss")
	assert.NoError(t, err)
}

func TestResetSuperWipesEverything(t *testing.T) {
	mem := store.NewMemStore()
	c := &ResetController{Store: mem}
	seedEventData(t, mem)

	req := httptest.NewRequest(http.MethodPost, "/api/reset_super", nil)
	req = withPrincipal(req, "boss", models.RoleSuperadmin)
	rec := httptest.NewRecorder()
	c.ResetSuper(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	for _, collection := range []string{orderCollection, itemCollection, signageCollection, userCollection} {
		assert.Zero(t, countDocs(t, mem, collection))
	}
}
