package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	database "github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/config"
	controller "github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/controllers"
	helper "github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/helper"
	middleware "github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/middlewares"
	routes "github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/routes"
	"github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/store"
)

func main() {
	// Load environment variables
	database.LoadEnv()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	client := database.DBinstance()
	documents := store.NewMongoStore(database.OpenDatabase(client))

	orderController := &controller.OrderController{Store: documents}
	itemController := &controller.ItemController{Store: documents}
	userController := &controller.UserController{Store: documents}
	signageController := &controller.SignageController{Store: documents}
	settingsController := &controller.SettingsController{Store: documents}
	salesController := &controller.SalesController{Store: documents}
	permissionController := &controller.PermissionController{Store: documents}
	resetController := &controller.ResetController{Store: documents}

	guard := &middleware.PermissionGuard{
		Resolver: &helper.AccessResolver{Store: documents},
	}

	router := mux.NewRouter()

	// Public Routes (No Authentication)
	routes.OrderPublicRoutes(router, orderController)
	routes.ItemPublicRoutes(router, itemController)
	routes.UserPublicRoutes(router, userController)
	routes.SignagePublicRoutes(router, signageController)

	// Apply Authentication Middleware to Protected Routes
	securedRoutes := router.PathPrefix("/").Subrouter()
	securedRoutes.Use(middleware.Authentication)
	routes.OrderProtectedRoutes(securedRoutes, orderController, guard)
	routes.ItemProtectedRoutes(securedRoutes, itemController, guard)
	routes.UserProtectedRoutes(securedRoutes, userController, guard)
	routes.SignageProtectedRoutes(securedRoutes, signageController, guard)
	routes.AdminProtectedRoutes(securedRoutes, settingsController, salesController,
		permissionController, resetController, guard)

	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
