package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controller "github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/controllers"
	middleware "github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/middlewares"
	"github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/models"
)

// The signage screen itself polls without logging in.
func SignagePublicRoutes(router *mux.Router, c *controller.SignageController) {
	router.HandleFunc("/api/signage", c.GetSignageFeed).Methods(http.MethodGet)
}

func SignageProtectedRoutes(router *mux.Router, c *controller.SignageController, guard *middleware.PermissionGuard) {
	router.HandleFunc("/api/signage", guard.Capability(models.CapabilityAdmin, c.AddSignageItem)).Methods(http.MethodPost)
	router.HandleFunc("/api/signage/update", guard.Capability(models.CapabilityAdmin, c.UpdateSignageItemField)).Methods(http.MethodPost)
	router.HandleFunc("/api/signage/{item_id}", guard.Capability(models.CapabilityAdmin, c.DeleteSignageItem)).Methods(http.MethodDelete)
}
