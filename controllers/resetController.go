package controller

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	middleware "github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/middlewares"
	"github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/store"
)

type ResetController struct {
	Store store.Store
}

// ResetData clears the event data: orders, menu items and signage. Users
// and the permission table survive, so the stall can reset between days
// without re-creating staff logins.
func (c *ResetController) ResetData(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	for _, collection := range []string{orderCollection, itemCollection, signageCollection} {
		if err := c.clearCollection(ctx, collection, ""); err != nil {
			http.Error(w, `{"success": false, "message": "Reset failed"}`, http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
}

// ResetAll additionally deletes every user except the caller.
func (c *ResetController) ResetAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	for _, collection := range []string{orderCollection, itemCollection, signageCollection} {
		if err := c.clearCollection(ctx, collection, ""); err != nil {
			http.Error(w, `{"success": false, "message": "Reset failed"}`, http.StatusInternalServerError)
			return
		}
	}

	caller, _ := middleware.GetPrincipal(r)
	if err := c.clearCollection(ctx, userCollection, caller); err != nil {
		http.Error(w, `{"success": false, "message": "Reset failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
}

// ResetSuper wipes everything including all users. After this the service
// needs to be re-seeded before anyone can log in again.
func (c *ResetController) ResetSuper(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	for _, collection := range []string{orderCollection, itemCollection, signageCollection, userCollection} {
		if err := c.clearCollection(ctx, collection, ""); err != nil {
			http.Error(w, `{"success": false, "message": "Reset failed"}`, http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true})
}

// clearCollection deletes every document in a collection, skipping keep if
// non-empty.
func (c *ResetController) clearCollection(ctx context.Context, collection, keep string) error {
	docs, err := c.Store.Query(ctx, collection, nil, store.QueryOpts{})
	if err != nil {
		return err
	}
	for _, doc := range docs {
		if keep != "" && doc.ID == keep {
			continue
		}
		if err := c.Store.Delete(ctx, collection, doc.ID); err != nil {
			log.Printf("failed to delete %s/%s during reset: %v", collection, doc.ID, err)
			return err
		}
	}
	return nil
}
