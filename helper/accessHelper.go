package helper

import (
	"context"
	"log"

	"github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/models"
	"github.com/wchi-0823/sangisai-ordersystem-sangi-shinagawa-kendo/store"
)

// Collection and document holding the role -> capability table.
const (
	PermissionCollection = "permissions"
	PermissionDocKey     = "role_access"
)

// AccessResolver decides whether a role may use a capability. Two tiers:
// the superadmin role is always allowed and is checked before the store is
// ever touched, so no table content can lock it out; every other role is
// looked up in the stored table, which is a sparse allow-list.
type AccessResolver struct {
	Store store.Store
}

// Authorize reports whether role may use capability. Fail-closed: a
// missing table, a missing role, a missing capability entry, or a store
// read failure all deny.
func (a *AccessResolver) Authorize(ctx context.Context, role, capability string) bool {
	if role == models.RoleSuperadmin {
		return true
	}

	fields, err := a.Store.Get(ctx, PermissionCollection, PermissionDocKey)
	if err != nil {
		if err != store.ErrNotFound {
			log.Printf("permission table read failed, denying %q/%q: %v", role, capability, err)
		}
		return false
	}

	roleEntry, ok := fields[role].(map[string]any)
	if !ok {
		return false
	}
	allowed, ok := roleEntry[capability].(bool)
	return ok && allowed
}
