package entity

import "time"

// Roles válidos para User.
const (
	RoleSuperAdmin = "superadmin"
	RoleAdmin      = "admin"
	RoleStaff      = "staff"
)

// ValidRole indica si r es un rol soportado.
func ValidRole(r string) bool {
	return r == RoleSuperAdmin || r == RoleAdmin || r == RoleStaff
}

// IsAdminRole indica si el rol tiene privilegios de administración.
func IsAdminRole(r string) bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}

// User representa un usuario del sistema.
type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"` // bcrypt
	Name         string    `db:"name"`
	Role         string    `db:"role"`
	Active       bool      `db:"active"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
