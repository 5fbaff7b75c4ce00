package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/models"
	"github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/store"
)

const orderCollection = "orders"

type OrderController struct {
	Store store.Store
}

// NewTicketNumber draws the 4-digit ticket shown to the customer. One
// uniform draw, no uniqueness check against existing orders: two
// concurrent orders can receive the same ticket. Lookup resolves such
// collisions by taking the newest match (see GetOrderByTicket).
func NewTicketNumber() string {
	return fmt.Sprintf("%04d", rand.Intn(10000))
}

// OrderTotal sums price*quantity over the line items that carry both
// fields. Items missing either are excluded from the total but stay on the
// order.
func OrderTotal(items []models.LineItem) int {
	total := 0
	for _, item := range items {
		if item.Price != nil && item.Quantity != nil {
			total += *item.Price * *item.Quantity
		}
	}
	return total
}

// CreateOrder takes the cart as a JSON array of line items and writes a
// new order: total fixed now and never recomputed, preparation status
// "cooking", payment status "unpaid", creation time stamped by the store.
func (c *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var items []models.LineItem
	if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if len(items) == 0 {
		http.Error(w, `{"success": false, "message": "Order must contain at least one item"}`, http.StatusBadRequest)
		return
	}

	ticketNumber := NewTicketNumber()
	fields := store.M{
		"ticket_number":  ticketNumber,
		"items":          lineItemDocs(items),
		"total_price":    OrderTotal(items),
		"status":         models.StatusCooking,
		"payment_status": models.PaymentUnpaid,
		"created_at":     store.ServerTimestamp,
	}

	orderId, err := c.Store.Add(ctx, orderCollection, fields)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Order creation failed"}`, http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"success":       true,
		"ticket_number": ticketNumber,
		"order_id":      orderId,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetOrderByTicket resolves a ticket number back to an order. Ticket
// numbers are not unique; when several orders share one, the most recently
// created wins, on the grounds that a cashier is almost always holding the
// ticket that was just printed.
func (c *OrderController) GetOrderByTicket(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	ticketNumber := r.URL.Query().Get("ticket")
	if ticketNumber == "" {
		http.Error(w, `{"success": false, "message": "Ticket number is required"}`, http.StatusBadRequest)
		return
	}

	docs, err := c.Store.Query(ctx, orderCollection,
		store.M{"ticket_number": ticketNumber},
		store.QueryOpts{SortBy: "created_at", Descending: true, Limit: 1})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving order"}`, http.StatusInternalServerError)
		return
	}
	if len(docs) == 0 {
		http.Error(w, `{"success": false, "message": "Order not found"}`, http.StatusNotFound)
		return
	}

	response := map[string]interface{}{
		"success": true,
		"order":   docs[0].Fields,
		"doc_id":  docs[0].ID,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetOrderById serves the order-confirmation view after checkout.
func (c *OrderController) GetOrderById(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	orderId := mux.Vars(r)["order_id"]

	fields, err := c.Store.Get(ctx, orderCollection, orderId)
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"success": false, "message": "Order not found"}`, http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving order"}`, http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"success": true,
		"order":   fields,
		"doc_id":  orderId,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetOrders is the poll feed for the kitchen and pickup display screens:
// every order, oldest first.
func (c *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	docs, err := c.Store.Query(ctx, orderCollection, nil,
		store.QueryOpts{SortBy: "created_at"})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving orders"}`, http.StatusInternalServerError)
		return
	}

	orders := make([]map[string]interface{}, 0, len(docs))
	for _, doc := range docs {
		order := doc.Fields
		order["doc_id"] = doc.ID
		orders = append(orders, order)
	}

	response := map[string]interface{}{
		"success": true,
		"data":    orders,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// UpdateOrderStatus overwrites the preparation status. Any non-empty
// string is accepted on purpose: the original system let the kitchen
// invent stages freely, and that behavior is preserved here rather than
// silently tightened. Last write wins.
func (c *OrderController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var requestBody struct {
		DocID  string `json:"doc_id"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if requestBody.DocID == "" || requestBody.Status == "" {
		http.Error(w, `{"success": false, "message": "Missing data"}`, http.StatusBadRequest)
		return
	}

	err := c.Store.Update(ctx, orderCollection, requestBody.DocID,
		store.M{"status": requestBody.Status})
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"success": false, "message": "Order not found"}`, http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, `{"success": false, "message": "Failed to update order status"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
}

// UpdatePaymentStatus marks an order paid. Unconditional and idempotent:
// marking an already-paid order again changes nothing and is not an error.
// There is no way back to unpaid.
func (c *OrderController) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var requestBody struct {
		DocID string `json:"doc_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if requestBody.DocID == "" {
		http.Error(w, `{"success": false, "message": "Document ID is required"}`, http.StatusBadRequest)
		return
	}

	err := c.Store.Update(ctx, orderCollection, requestBody.DocID,
		store.M{"payment_status": models.PaymentPaid})
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, `{"success": false, "message": "Order not found"}`, http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, `{"success": false, "message": "Failed to update payment status"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
}

// lineItemDocs converts the decoded cart into store documents, keeping
// incomplete entries as they arrived.
func lineItemDocs(items []models.LineItem) []any {
	docs := make([]any, 0, len(items))
	for _, item := range items {
		doc := store.M{"name": item.Name}
		if item.Price != nil {
			doc["price"] = *item.Price
		}
		if item.Quantity != nil {
			doc["quantity"] = *item.Quantity
		}
		if item.ItemID != "" {
			doc["item_id"] = item.ItemID
		}
		if item.IsSet {
			doc["is_set"] = true
		}
		docs = append(docs, doc)
	}
	return docs
}
