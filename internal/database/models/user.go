package models

import (
	"strings"

	"github.com/google/uuid"
)

// User is the central identity. OnboardingCompleted is the single authority
// for whether the user still needs onboarding.
type User struct {
	BaseModel
	Auth0Sub            *string    `json:"auth0_sub,omitempty" gorm:"uniqueIndex;size:255"`
	Email               string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash        string     `json:"-" gorm:"size:255"`
	FirstName           string     `json:"first_name" gorm:"size:100" validate:"max=100"`
	LastName            string     `json:"last_name" gorm:"size:100" validate:"max=100"`
	Role                UserRole   `json:"role" gorm:"type:varchar(20);not null;default:'OWNER'"`
	IsActive            bool       `json:"is_active" gorm:"not null"`
	OnboardingCompleted bool       `json:"onboarding_completed" gorm:"not null;default:false"`
	TenantID            *uuid.UUID `json:"tenant_id,omitempty" gorm:"type:uuid;index"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// FullName joins first and last name
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
