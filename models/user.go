package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles
const (
	RoleAdministrador = "Administrador"
	RoleTecnico       = "Técnico"
)

// User represents an operator account (administrator or technician).
// Accounts are seeded at startup; there is no self-service registration.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	Username  string         `gorm:"uniqueIndex;not null" json:"username"`
	Role      string         `gorm:"not null;default:'Técnico'" json:"role"` // "Administrador" or "Técnico"
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
