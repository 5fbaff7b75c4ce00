package models

// Roles. RoleSuperadmin is the hardcoded super-role: it bypasses the
// stored permission table entirely and must never be written into it.
const (
	RoleSuperadmin = "superadmin"
	RoleAdmin      = "admin"
	RoleStaff      = "staff"
)

// User is a staff login. Documents are keyed by username. PasswordHash is
// never serialized into a response.
type User struct {
	Username string `json:"username" validate:"required,min=1,max=50"`
	Password string `json:"password,omitempty" validate:"required,min=4"`
	Role     string `json:"role" validate:"required,oneof=superadmin admin staff"`
}
