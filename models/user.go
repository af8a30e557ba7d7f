package models

import "time"

type UserRole string

const (
	UserRoleUser  UserRole = "USER"
	UserRoleAdmin UserRole = "ADMIN"
)

// User mirrors an identity-provider account. The ID is the provider's
// subject, so there is no generated key here.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Role      UserRole  `gorm:"type:VARCHAR(10);default:'USER'" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
