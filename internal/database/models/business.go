package models

import "github.com/google/uuid"

// Business holds the company details captured during onboarding. A tenant owns at most one.
type Business struct {
	BaseModel
	TenantID       uuid.UUID `json:"tenant_id" gorm:"type:uuid;uniqueIndex;not null"`
	OwnerID        string    `json:"owner_id" gorm:"not null;size:64"`
	Name           string    `json:"name" gorm:"not null;size:255" validate:"required,max=255"`
	BusinessType   string    `json:"business_type" gorm:"size:100" validate:"max=100"`
	Country        string    `json:"country" gorm:"size:100" validate:"max=100"`
	LegalStructure string    `json:"legal_structure" gorm:"size:100" validate:"max=100"`
	Industry       string    `json:"industry" gorm:"size:100" validate:"max=100"`
	Phone          string    `json:"phone" gorm:"size:50" validate:"max=50"`
}

// TableName returns the table name for Business
func (Business) TableName() string {
	return "businesses"
}
