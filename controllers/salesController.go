package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/store"
)

type SalesController struct {
	Store store.Store
}

// GetSalesSummary totals every order for the admin dashboard: overall
// revenue and order count, quantity sold per item name, and revenue per
// category. Categories come from the current item catalog matched by name;
// items no longer on the menu fall into "uncategorized".
func (c *SalesController) GetSalesSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	itemDocs, err := c.Store.Query(ctx, itemCollection, nil, store.QueryOpts{})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving items"}`, http.StatusInternalServerError)
		return
	}
	categoryByName := make(map[string]string, len(itemDocs))
	for _, doc := range itemDocs {
		name, _ := doc.Fields["name"].(string)
		category, _ := doc.Fields["category"].(string)
		if name != "" {
			categoryByName[name] = category
		}
	}

	orderDocs, err := c.Store.Query(ctx, orderCollection, nil, store.QueryOpts{})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving orders"}`, http.StatusInternalServerError)
		return
	}

	totalRevenue := 0
	salesByItem := map[string]int{}
	salesByCategory := map[string]int{}
	for _, doc := range orderDocs {
		totalRevenue += asInt(doc.Fields["total_price"])
		items, _ := doc.Fields["items"].([]any)
		for _, entry := range items {
			item, _ := entry.(map[string]any)
			if item == nil {
				continue
			}
			name, _ := item["name"].(string)
			quantity := asInt(item["quantity"])
			subtotal := asInt(item["price"]) * quantity

			salesByItem[name] += quantity
			category := categoryByName[name]
			if category == "" {
				category = "uncategorized"
			}
			salesByCategory[category] += subtotal
		}
	}

	response := map[string]interface{}{
		"total_revenue":     totalRevenue,
		"total_orders":      len(orderDocs),
		"sales_by_item":     salesByItem,
		"sales_by_category": salesByCategory,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// asInt copes with the numeric types the store hands back (plain ints from
// the memory store, int32/int64/float64 from decoded bson).
func asInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}
