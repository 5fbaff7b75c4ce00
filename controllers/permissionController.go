package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	helper "github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/helper"
	"github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/models"
	"github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/store"
)

type PermissionController struct {
	Store store.Store
}

// GetPermissions returns the stored role -> capability table, or the
// default table when none has been saved yet.
func (c *PermissionController) GetPermissions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	fields, err := c.Store.Get(ctx, helper.PermissionCollection, helper.PermissionDocKey)
	if errors.Is(err, store.ErrNotFound) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.DefaultPermissionTable())
		return
	} else if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving permissions"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(fields)
}

// UpdatePermissions replaces the whole table. The superadmin role cannot
// be written into it: the bypass lives in code, not in this document, so a
// table edit can never lock the super-role out.
func (c *PermissionController) UpdatePermissions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var table models.PermissionTable
	if err := json.NewDecoder(r.Body).Decode(&table); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if _, ok := table[models.RoleSuperadmin]; ok {
		http.Error(w, `{"success": false, "message": "The superadmin role is not configurable"}`, http.StatusBadRequest)
		return
	}

	fields := store.M{}
	for role, capabilities := range table {
		entry := store.M{}
		for capability, allowed := range capabilities {
			entry[capability] = allowed
		}
		fields[role] = entry
	}

	if err := c.Store.Set(ctx, helper.PermissionCollection, helper.PermissionDocKey, fields, false); err != nil {
		http.Error(w, `{"success": false, "message": "Failed to update permissions"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
}
