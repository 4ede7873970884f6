// Package userrepo provides read access to user accounts (farmers, buyers).
// Account management itself lives outside the fulfillment core; this package
// only resolves identifiers against the shared users table.
package userrepo

import (
	"github.com/google/uuid"
)

// UserDTO represents the database structure for user accounts.
type UserDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
	Role string `gorm:"index"`
}

// TableName specifies the database table name for user entities.
// Overrides GORM's default naming convention to use "users".
func (UserDTO) TableName() string {
	return "users"
}
