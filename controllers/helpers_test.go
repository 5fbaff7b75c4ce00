package controller

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	middleware "github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/middlewares"
)

func withMuxVars(r *http.Request, vars map[string]string) *http.Request {
	return mux.SetURLVars(r, vars)
}

// withPrincipal attaches a logged-in user to the request the way the
// authentication middleware would.
func withPrincipal(r *http.Request, username, role string) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.UsernameKey, username)
	ctx = context.WithValue(ctx, middleware.RoleKey, role)
	return r.WithContext(ctx)
}
