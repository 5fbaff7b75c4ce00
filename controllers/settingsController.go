package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/store"
)

const (
	settingsCollection = "store_settings"
	settingsDocKey     = "main"
)

type SettingsController struct {
	Store store.Store
}

// GetStoreSettings returns the settings document, or an empty object when
// it has never been written.
func (c *SettingsController) GetStoreSettings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	fields, err := c.Store.Get(ctx, settingsCollection, settingsDocKey)
	if errors.Is(err, store.ErrNotFound) {
		fields = store.M{}
	} else if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving store settings"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(fields)
}

// UpdateStoreSettings merge-writes the posted fields, leaving the rest of
// the document untouched.
func (c *SettingsController) UpdateStoreSettings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var fields store.M
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if len(fields) == 0 {
		http.Error(w, `{"success": false, "message": "No fields to update"}`, http.StatusBadRequest)
		return
	}

	if err := c.Store.Set(ctx, settingsCollection, settingsDocKey, fields, true); err != nil {
		http.Error(w, `{"success": false, "message": "Failed to update store settings"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
}
