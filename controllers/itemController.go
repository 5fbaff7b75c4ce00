package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator"
	"github.com/gorilla/mux"

	"github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/models"
	"github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/store"
)

const itemCollection = "items"

var validate = validator.New()

type ItemController struct {
	Store store.Store
}

// GetItems lists the menu, sold-out entries included. Public: the order
// page renders from this.
func (c *ItemController) GetItems(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	docs, err := c.Store.Query(ctx, itemCollection, nil, store.QueryOpts{})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving items"}`, http.StatusInternalServerError)
		return
	}

	items := make([]map[string]interface{}, 0, len(docs))
	for _, doc := range docs {
		item := doc.Fields
		item["id"] = doc.ID
		items = append(items, item)
	}

	response := map[string]interface{}{
		"success": true,
		"message": "Items retrieved successfully",
		"data":    items,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// CreateItem adds a menu item under a caller-chosen id.
func (c *ItemController) CreateItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var requestBody struct {
		ID string `json:"id"`
		models.Item
	}
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if requestBody.ID == "" {
		http.Error(w, `{"success": false, "message": "Item ID is required"}`, http.StatusBadRequest)
		return
	}
	if validationErr := validate.Struct(requestBody.Item); validationErr != nil {
		http.Error(w, `{"success": false, "message": "Item validation failed"}`, http.StatusBadRequest)
		return
	}

	fields := store.M{
		"name":        *requestBody.Name,
		"price":       *requestBody.Price,
		"category":    requestBody.Category,
		"image_url":   requestBody.ImageURL,
		"description": requestBody.Description,
		"is_sold_out": requestBody.IsSoldOut,
	}
	if err := c.Store.Set(ctx, itemCollection, requestBody.ID, fields, false); err != nil {
		http.Error(w, `{"success": false, "message": "Item creation failed"}`, http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"success": true,
		"message": "Item created successfully",
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(response)
}

// UpdateItemField patches a single field of an item, the way the admin
// console edits cells in place. Price is coerced to an integer and
// is_sold_out to a boolean before the write.
func (c *ItemController) UpdateItemField(w http.ResponseWriter, r *http.Request) {
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
	switch requestBody.Field {
	case "price":
		number, ok := value.(float64)
		if !ok {
			http.Error(w, `{"success": false, "message": "Price must be a number"}`, http.StatusBadRequest)
			return
		}
		value = int(number)
	case "is_sold_out":
		flag, ok := value.(bool)
		if !ok {
			http.Error(w, `{"success": false, "message": "is_sold_out must be a boolean"}`, http.StatusBadRequest)
			return
		}
		value = flag
	}

	err := c.Store.Update(ctx, itemCollection, requestBody.ID, store.M{requestBody.Field: value})
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"success": false, "message": "Item not found"}`, http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, `{"success": false, "message": "Item update failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
}

// DeleteItem removes a menu item.
func (c *ItemController) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	itemId := mux.Vars(r)["item_id"]

	err := c.Store.Delete(ctx, itemCollection, itemId)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"success": false, "message": "Item not found"}`, http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, `{"success": false, "message": "Item deletion failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
}
