package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/helper"
	"github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/models"
	"github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/store"
)

func TestGetPermissionsDefaultTable(t *testing.T) {
	c := &PermissionController{Store: store.NewMemStore()}

	req := httptest.NewRequest(http.MethodGet, "/api/permissions", nil)
	rec := httptest.NewRecorder()
	c.GetPermissions(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var table models.PermissionTable
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &table))
	assert.True(t, table[models.RoleAdmin][models.CapabilityAdmin])
	assert.False(t, table[models.RoleStaff][models.CapabilityKitchen])
	_, ok := table[models.RoleSuperadmin]
	assert.False(t, ok, "the super-role never appears in the table")
}

func TestUpdatePermissionsRoundTrip(t *testing.T) {
	mem := store.NewMemStore()
	c := &PermissionController{Store: mem}

	table := models.PermissionTable{
		models.RoleStaff: {models.CapabilityKitchen: true, models.CapabilityCashier: false},
	}
	body, _ := json.Marshal(table)
	req := httptest.NewRequest(http.MethodPost, "/api/permissions", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	c.UpdatePermissions(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// A change takes effect on the very next authorization check.
	resolver := &helper.AccessResolver{Store: mem}
	assert.True(t, resolver.Authorize(context.Background(), models.RoleStaff, models.CapabilityKitchen))
	assert.False(t, resolver.Authorize(context.Background(), models.RoleStaff, models.CapabilityCashier))
}

func TestUpdatePermissionsRejectsSuperRole(t *testing.T) {
	c := &PermissionController{Store: store.NewMemStore()}

	table := models.PermissionTable{
		models.RoleSuperadmin: {models.CapabilityAdmin: false},
	}
	body, _ := json.Marshal(table)
	req := httptest.NewRequest(http.MethodPost, "/api/permissions", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	c.UpdatePermissions(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
