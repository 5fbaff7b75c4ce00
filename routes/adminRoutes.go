package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controller "github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/controllers"
	middleware "github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/middlewares"
	"github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/models"
)

// AdminProtectedRoutes wires the admin console: store settings and the
// sales dashboard behind the admin capability, the permission editor and
// the bulk resets behind the super-role itself.
func AdminProtectedRoutes(router *mux.Router,
	settings *controller.SettingsController,
	sales *controller.SalesController,
	permissions *controller.PermissionController,
	reset *controller.ResetController,
	guard *middleware.PermissionGuard) {

	router.HandleFunc("/api/store_settings", guard.Capability(models.CapabilityAdmin, settings.GetStoreSettings)).Methods(http.MethodGet)
	router.HandleFunc("/api/store_settings", guard.Capability(models.CapabilityAdmin, settings.UpdateStoreSettings)).Methods(http.MethodPost)
	router.HandleFunc("/api/sales", guard.Capability(models.CapabilityAdmin, sales.GetSalesSummary)).Methods(http.MethodGet)

	router.HandleFunc("/api/permissions", guard.Superadmin(permissions.GetPermissions)).Methods(http.MethodGet)
	router.HandleFunc("/api/permissions", guard.Superadmin(permissions.UpdatePermissions)).Methods(http.MethodPost)

	router.HandleFunc("/api/reset_data", guard.Superadmin(reset.ResetData)).Methods(http.MethodPost)
	router.HandleFunc("/api/reset_all", guard.Superadmin(reset.ResetAll)).Methods(http.MethodPost)
	router.HandleFunc("/api/reset_super", guard.Superadmin(reset.ResetSuper)).Methods(http.MethodPost)
}
