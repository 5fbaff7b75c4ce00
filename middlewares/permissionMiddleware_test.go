package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/helper"
	"github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/models"
	"github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/store"
)

func requestAs(username, role string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	ctx := context.WithValue(req.Context(), UsernameKey, username)
	ctx = context.WithValue(ctx, RoleKey, role)
	return req.WithContext(ctx)
}

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func newGuard(t *testing.T, table store.M) *PermissionGuard {
	t.Helper()
	mem := store.NewMemStore()
	if table != nil {
		require.NoError(t, mem.Set(context.Background(),
			helper.PermissionCollection, helper.PermissionDocKey, table, false))
	}
	return &PermissionGuard{Resolver: &helper.AccessResolver{Store: mem}}
}

func TestCapabilityGuard(t *testing.T) {
	guard := newGuard(t, store.M{
		models.RoleStaff: store.M{
			models.CapabilityKitchen: false,
			models.CapabilityCashier: true,
		},
	})

	rec := httptest.NewRecorder()
	guard.Capability(models.CapabilityCashier, okHandler)(rec, requestAs("tanaka", models.RoleStaff))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	guard.Capability(models.CapabilityKitchen, okHandler)(rec, requestAs("tanaka", models.RoleStaff))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	guard.Capability(models.CapabilityAdmin, okHandler)(rec, requestAs("tanaka", models.RoleStaff))
	assert.Equal(t, http.StatusForbidden, rec.Code, "missing capability denies")
}

func TestCapabilityGuardSuperadminBypass(t *testing.T) {
	guard := newGuard(t, nil)

	rec := httptest.NewRecorder()
	guard.Capability(models.CapabilityAdmin, okHandler)(rec, requestAs("boss", models.RoleSuperadmin))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSuperadminGuard(t *testing.T) {
	guard := newGuard(t, nil)

	rec := httptest.NewRecorder()
	guard.Superadmin(okHandler)(rec, requestAs("boss", models.RoleSuperadmin))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	guard.Superadmin(okHandler)(rec, requestAs("tanaka", models.RoleAdmin))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
