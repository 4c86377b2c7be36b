package models

// Tenant is the isolation boundary for one customer account.
// OwnerID holds the owning user's id as a string.
type Tenant struct {
	BaseModel
	Name     string `json:"name" gorm:"not null;size:255" validate:"required,max=255"`
	OwnerID  string `json:"owner_id" gorm:"uniqueIndex;not null;size:64" validate:"required,max=64"`
	IsActive bool   `json:"is_active" gorm:"not null"`

	// Relationships
	Business *Business `json:"business,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}
