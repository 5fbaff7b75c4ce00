package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controller "github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/controllers"
	middleware "github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/middlewares"
	"github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/models"
)

func ItemPublicRoutes(router *mux.Router, c *controller.ItemController) {
	router.HandleFunc("/api/items", c.GetItems).Methods(http.MethodGet)
}

func ItemProtectedRoutes(router *mux.Router, c *controller.ItemController, guard *middleware.PermissionGuard) {
	router.HandleFunc("/api/items", guard.Capability(models.CapabilityAdmin, c.CreateItem)).Methods(http.MethodPost)
	router.HandleFunc("/api/items/update", guard.Capability(models.CapabilityAdmin, c.UpdateItemField)).Methods(http.MethodPost)
	router.HandleFunc("/api/items/{item_id}", guard.Capability(models.CapabilityAdmin, c.DeleteItem)).Methods(http.MethodDelete)
}
