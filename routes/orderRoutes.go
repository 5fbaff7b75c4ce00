package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controller "github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/controllers"
	middleware "github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/middlewares"
	"github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/models"
)

// OrderPublicRoutes: checkout and the confirmation/payment views need no
// login.
func OrderPublicRoutes(router *mux.Router, c *controller.OrderController) {
	router.HandleFunc("/order", c.CreateOrder).Methods(http.MethodPost)
	router.HandleFunc("/api/order_by_ticket", c.GetOrderByTicket).Methods(http.MethodGet)
	router.HandleFunc("/api/orders/{order_id}", c.GetOrderById).Methods(http.MethodGet)
}

func OrderProtectedRoutes(router *mux.Router, c *controller.OrderController, guard *middleware.PermissionGuard) {
	router.HandleFunc("/api/orders", guard.Capability(models.CapabilityKitchen, c.GetOrders)).Methods(http.MethodGet)
	router.HandleFunc("/api/display/orders", guard.Capability(models.CapabilityDisplay, c.GetOrders)).Methods(http.MethodGet)
	router.HandleFunc("/api/orders/status", guard.Capability(models.CapabilityKitchen, c.UpdateOrderStatus)).Methods(http.MethodPost)
	router.HandleFunc("/api/orders/payment", guard.Capability(models.CapabilityCashier, c.UpdatePaymentStatus)).Methods(http.MethodPost)
}
