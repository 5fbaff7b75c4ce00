package middleware

import (
	"net/http"

	helper "github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/helper"
	"github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/models"
)

// PermissionGuard wraps handlers with capability checks. It sits behind
// Authentication, so a principal is always present in the context by the
// time it runs.
type PermissionGuard struct {
	Resolver *helper.AccessResolver
}

// Capability allows the request through only when the principal's role
// holds the named capability in the stored permission table (superadmin
// always passes).
func (g *PermissionGuard) Capability(capability string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, role := GetPrincipal(r)
		if !g.Resolver.Authorize(r.Context(), role, capability) {
			http.Error(w, `{"success": false, "message": "Forbidden"}`, http.StatusForbidden)
			return
		}
		next(w, r)
	}
}

// Superadmin allows only the super-role through. Used for user management,
// permission editing and the bulk resets, which never appear in the table.
func (g *PermissionGuard) Superadmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, role := GetPrincipal(r)
		if role != models.RoleSuperadmin {
			http.Error(w, `{"success": false, "message": "Forbidden"}`, http.StatusForbidden)
			return
		}
		next(w, r)
	}
}
