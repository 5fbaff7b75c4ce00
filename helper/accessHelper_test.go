package helper

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/models"
	"github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/store"
)

func seedTable(t *testing.T, mem *store.MemStore, table store.M) {
	t.Helper()
	require.NoError(t, mem.Set(context.Background(), PermissionCollection, PermissionDocKey, table, false))
}

func TestAuthorizeSuperadminAlwaysAllowed(t *testing.T) {
	t.Parallel()

	capabilities := []string{
		models.CapabilityKitchen, models.CapabilityDisplay,
		models.CapabilityCashier, models.CapabilityAdmin, "anything-else",
	}

	// Empty store: no table at all.
	resolver := &AccessResolver{Store: store.NewMemStore()}
	for _, capability := range capabilities {
		assert.True(t, resolver.Authorize(context.Background(), models.RoleSuperadmin, capability))
	}

	// Even a table that tries to deny the super-role has no effect: the
	// bypass is checked before the store is read.
	mem := store.NewMemStore()
	seedTable(t, mem, store.M{
		models.RoleSuperadmin: store.M{models.CapabilityAdmin: false},
	})
	resolver = &AccessResolver{Store: mem}
	for _, capability := range capabilities {
		assert.True(t, resolver.Authorize(context.Background(), models.RoleSuperadmin, capability))
	}
}

func TestAuthorizeSparseAllowList(t *testing.T) {
	t.Parallel()

	mem := store.NewMemStore()
	seedTable(t, mem, store.M{
		models.RoleStaff: store.M{
			models.CapabilityKitchen: false,
			models.CapabilityCashier: true,
		},
	})
	resolver := &AccessResolver{Store: mem}
	ctx := context.Background()

	assert.True(t, resolver.Authorize(ctx, models.RoleStaff, models.CapabilityCashier))
	assert.False(t, resolver.Authorize(ctx, models.RoleStaff, models.CapabilityKitchen), "explicit false denies")
	assert.False(t, resolver.Authorize(ctx, models.RoleStaff, models.CapabilityAdmin), "missing capability denies")
	assert.False(t, resolver.Authorize(ctx, models.RoleAdmin, models.CapabilityAdmin), "missing role denies")
	assert.False(t, resolver.Authorize(ctx, "", models.CapabilityCashier))
}

func TestAuthorizeMissingTableDenies(t *testing.T) {
	t.Parallel()

	resolver := &AccessResolver{Store: store.NewMemStore()}
	assert.False(t, resolver.Authorize(context.Background(), models.RoleAdmin, models.CapabilityAdmin))
}

// failingStore simulates a store outage.
type failingStore struct{}

var errStoreDown = errors.New("store unavailable")

func (failingStore) Get(context.Context, string, string) (store.M, error) {
	return nil, errStoreDown
}
func (failingStore) Set(context.Context, string, string, store.M, bool) error { return errStoreDown }
func (failingStore) Update(context.Context, string, string, store.M) error    { return errStoreDown }
func (failingStore) Delete(context.Context, string, string) error             { return errStoreDown }
func (failingStore) Add(context.Context, string, store.M) (string, error) {
	return "", errStoreDown
}
func (failingStore) Query(context.Context, string, store.M, store.QueryOpts) ([]store.Doc, error) {
	return nil, errStoreDown
}

// A store outage during an authorization check must deny, never allow.
func TestAuthorizeFailsClosed(t *testing.T) {
	t.Parallel()

	resolver := &AccessResolver{Store: failingStore{}}
	assert.False(t, resolver.Authorize(context.Background(), models.RoleAdmin, models.CapabilityAdmin))

	// The bypass still works with the store down.
	assert.True(t, resolver.Authorize(context.Background(), models.RoleSuperadmin, models.CapabilityAdmin))
}
