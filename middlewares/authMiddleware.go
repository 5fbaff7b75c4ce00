package middleware

import (
	"context"
	"net/http"
	"strings"

	helper "github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/helper"
)

// Context keys to store user information
type contextKey string

const (
	UsernameKey contextKey = "username"
	RoleKey     contextKey = "role"
)

// Authentication middleware for Gorilla Mux
func Authentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientToken := r.Header.Get("Authorization")
		if clientToken == "" {
			http.Error(w, `{"success": false, "message": "No Authorization header provided"}`, http.StatusUnauthorized)
			return
		}

		// Token format should be "Bearer <token>"
		tokenParts := strings.Split(clientToken, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			http.Error(w, `{"success": false, "message": "Invalid Authorization format"}`, http.StatusUnauthorized)
			return
		}

		claims, errMsg := helper.ValidateToken(tokenParts[1])
		if errMsg != "" {
			http.Error(w, `{"success": false, "message": "`+errMsg+`"}`, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), UsernameKey, claims.Username)
		ctx = context.WithValue(ctx, RoleKey, claims.Role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetPrincipal retrieves the logged-in user from the request context.
func GetPrincipal(r *http.Request) (username, role string) {
	username, _ = r.Context().Value(UsernameKey).(string)
	role, _ = r.Context().Value(RoleKey).(string)
	return
}
