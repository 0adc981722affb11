package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "ADMIN"
	RoleOperator = "OPERATOR"
)

// User representa un usuario del sistema.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // ADMIN, OPERATOR
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
