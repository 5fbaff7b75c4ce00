package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/models"
	"github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/store"
)

const signageCollection = "signage_items"

type SignageController struct {
	Store store.Store
}

// GetSignageFeed is what the storefront screen polls: slides sorted by
// their order field plus the rotation settings. The settings live in a
// reserved document inside the same collection and are filtered out of the
// slide list.
func (c *SignageController) GetSignageFeed(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	docs, err := c.Store.Query(ctx, signageCollection, nil, store.QueryOpts{SortBy: "order"})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving signage items"}`, http.StatusInternalServerError)
		return
	}

	settings := models.DefaultSignageSettings()
	items := make([]map[string]interface{}, 0, len(docs))
	for _, doc := range docs {
		if doc.ID == models.SignageConfigKey {
			settings = doc.Fields
			continue
		}
		item := doc.Fields
		item["id"] = doc.ID
		items = append(items, item)
	}

	response := map[string]interface{}{
		"items":    items,
		"settings": settings,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// AddSignageItem appends a slide to the rotation.
func (c *SignageController) AddSignageItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var item models.SignageItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if validationErr := validate.Struct(item); validationErr != nil {
		http.Error(w, `{"success": false, "message": "URL is required"}`, http.StatusBadRequest)
		return
	}

	fields := store.M{
		"url":      *item.URL,
		"duration": item.Duration,
		"order":    item.Order,
	}
	id, err := c.Store.Add(ctx, signageCollection, fields)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Signage item creation failed"}`, http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"success": true,
		"id":      id,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(response)
}

// UpdateSignageItemField patches one field of a slide or of the reserved
// settings document. Duration and order are coerced to integers.
func (c *SignageController) UpdateSignageItemField(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var requestBody struct {
		ID    string `json:"id"`
		Field string `json:"field"`
		Value any    `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if requestBody.ID == "" || requestBody.Field == "" || requestBody.Value == nil {
		http.Error(w, `{"success": false, "message": "Missing data"}`, http.StatusBadRequest)
		return
	}

	value := requestBody.Value
	if requestBody.Field == "duration" || requestBody.Field == "order" {
		number, ok := value.(float64)
		if !ok {
			http.Error(w, `{"success": false, "message": "Value must be a number"}`, http.StatusBadRequest)
			return
		}
		value = int(number)
	}

	err := c.Store.Update(ctx, signageCollection, requestBody.ID, store.M{requestBody.Field: value})
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"success": false, "message": "Signage item not found"}`, http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, `{"success": false, "message": "Signage item update failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
}

// DeleteSignageItem removes a slide. The settings document is protected.
func (c *SignageController) DeleteSignageItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	itemId := mux.Vars(r)["item_id"]
	if itemId == models.SignageConfigKey {
		http.Error(w, `{"success": false, "message": "Cannot delete the signage settings"}`, http.StatusBadRequest)
		return
	}

	err := c.Store.Delete(ctx, signageCollection, itemId)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"success": false, "message": "Signage item not found"}`, http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, `{"success": false, "message": "Signage item deletion failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
}
