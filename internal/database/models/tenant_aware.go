package models

import "github.com/google/uuid"

// TenantAwareModel is embedded by every tenant-scoped row. The tenancy plugin
// fills TenantID on create and filters every query by it.
type TenantAwareModel struct {
	TenantID uuid.UUID `json:"tenant_id" gorm:"type:uuid;not null;index"`
}

// TenantScoped is implemented by models embedding TenantAwareModel.
type TenantScoped interface {
	TenantScoped() bool
}

// TenantScoped marks the embedding model as tenant-scoped.
func (TenantAwareModel) TenantScoped() bool { return true }

// MenuItem is a tenant-scoped point-of-sale menu entry.
type MenuItem struct {
	BaseModel
	TenantAwareModel
	Name        string `json:"name" gorm:"not null;size:255" validate:"required,max=255"`
	Description string `json:"description" gorm:"type:text"`
	PriceCents  int64  `json:"price_cents" gorm:"not null;default:0" validate:"min=0"`
	Category    string `json:"category" gorm:"size:100;index" validate:"max=100"`
	IsAvailable bool   `json:"is_available" gorm:"not null"`
}

// TableName returns the table name for MenuItem
func (MenuItem) TableName() string {
	return "menu_items"
}

// ProductSupplier is a tenant-scoped supplier record.
type ProductSupplier struct {
	BaseModel
	TenantAwareModel
	Name         string `json:"name" gorm:"not null;size:255" validate:"required,max=255"`
	ContactEmail string `json:"contact_email" gorm:"size:255" validate:"omitempty,email,max=255"`
	Phone        string `json:"phone" gorm:"size:50" validate:"max=50"`
	Address      string `json:"address" gorm:"type:text"`
}

// TableName returns the table name for ProductSupplier
func (ProductSupplier) TableName() string {
	return "product_suppliers"
}

// TenantScopedTables lists the tables guarded by tenant filtering and RLS policies.
var TenantScopedTables = []string{"menu_items", "product_suppliers"}
