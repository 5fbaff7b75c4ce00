package models

// Capabilities gating the protected work areas. These are the keys looked
// up in the stored permission table.
const (
	CapabilityKitchen = "kitchen"
	CapabilityDisplay = "display"
	CapabilityCashier = "cashier"
	CapabilityAdmin   = "admin"
)

// PermissionTable maps role name -> capability name -> allowed. It is a
// sparse allow-list: a missing role or capability means denied.
type PermissionTable map[string]map[string]bool

// DefaultPermissionTable is what the permission editor shows before a
// table has ever been saved.
func DefaultPermissionTable() PermissionTable {
	return PermissionTable{
		RoleAdmin: {
			CapabilityKitchen: true,
			CapabilityDisplay: true,
			CapabilityCashier: true,
			CapabilityAdmin:   true,
		},
		RoleStaff: {
			CapabilityKitchen: false,
			CapabilityDisplay: true,
			CapabilityCashier: true,
			CapabilityAdmin:   false,
		},
	}
}
