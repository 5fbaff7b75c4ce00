package routes

import (
	"net/http"

	"github.com/gorilla/mux"

	controller "github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/controllers"
	middleware "github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/middlewares"
)

func UserPublicRoutes(router *mux.Router, c *controller.UserController) {
	router.HandleFunc("/users/login", c.Login).Methods(http.MethodPost)
}

// User management is superadmin-only and never consults the permission
// table.
func UserProtectedRoutes(router *mux.Router, c *controller.UserController, guard *middleware.PermissionGuard) {
	router.HandleFunc("/api/users", guard.Superadmin(c.GetUsers)).Methods(http.MethodGet)
	router.HandleFunc("/api/users", guard.Superadmin(c.AddUser)).Methods(http.MethodPost)
	router.HandleFunc("/api/users/delete", guard.Superadmin(c.DeleteUser)).Methods(http.MethodPost)
}
