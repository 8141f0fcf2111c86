package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role names recognized by the authorization layer.
const (
	RoleReader = "Reader"
	RoleWriter = "Writer"
)

// User is an account. The username doubles as the email address.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string    `gorm:"not null"`
	Roles        []Role    `gorm:"many2many:user_roles;"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Role is a named permission group. Only Reader and Writer are seeded.
type Role struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"size:50;not null;uniqueIndex"`
}

// RoleNames flattens the user's role set for token claims.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, role := range u.Roles {
		names = append(names, role.Name)
	}
	return names
}
