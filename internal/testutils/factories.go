package testutils

import (
	"fmt"
	"time"

	"bizhub-backend/internal/database/models"

	"github.com/google/uuid"
)

// TenantFactory provides methods to create test Tenant data
type TenantFactory struct{}

// NewTenantFactory creates a new TenantFactory
func NewTenantFactory() *TenantFactory {
	return &TenantFactory{}
}

// Create creates a test Tenant with default values
func (f *TenantFactory) Create() *models.Tenant {
	return &models.Tenant{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     "Test Tenant",
		OwnerID:  uuid.New().String(),
		IsActive: true,
	}
}

// WithOwner creates a tenant owned by the given user
func (f *TenantFactory) WithOwner(owner *models.User) *models.Tenant {
	tenant := f.Create()
	tenant.OwnerID = owner.ID.String()
	return tenant
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values and a unique email
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:     fmt.Sprintf("user-%s@example.com", id.String()[:8]),
		FirstName: "John",
		LastName:  "Doe",
		Role:      models.UserRoleOwner,
		IsActive:  true,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithTenant creates an onboarded user bound to a tenant
func (f *UserFactory) WithTenant(tenantID uuid.UUID) *models.User {
	user := f.Create()
	user.TenantID = &tenantID
	user.OnboardingCompleted = true
	return user
}

// SessionFactory provides methods to create test UserSession data
type SessionFactory struct{}

// NewSessionFactory creates a new SessionFactory
func NewSessionFactory() *SessionFactory {
	return &SessionFactory{}
}

// Create creates an active session for the user expiring in a day
func (f *SessionFactory) Create(user *models.User) *models.UserSession {
	now := time.Now()
	return &models.UserSession{
		SessionID:       uuid.New(),
		UserID:          user.ID,
		TenantID:        user.TenantID,
		ExpiresAt:       now.Add(24 * time.Hour),
		IsActive:        true,
		NeedsOnboarding: !user.OnboardingCompleted,
		LastActivity:    now,
	}
}

// Expired creates a session that expired an hour ago
func (f *SessionFactory) Expired(user *models.User) *models.UserSession {
	session := f.Create(user)
	session.ExpiresAt = time.Now().Add(-time.Hour)
	return session
}

// MenuItemFactory provides methods to create test MenuItem data
type MenuItemFactory struct{}

// NewMenuItemFactory creates a new MenuItemFactory
func NewMenuItemFactory() *MenuItemFactory {
	return &MenuItemFactory{}
}

// Create creates a menu item without a tenant; the tenancy plugin assigns one
func (f *MenuItemFactory) Create() *models.MenuItem {
	return &models.MenuItem{
		Name:        "Espresso",
		Description: "Double shot",
		PriceCents:  300,
		Category:    "drinks",
		IsAvailable: true,
	}
}

// WithName sets a custom name for the menu item
func (f *MenuItemFactory) WithName(name string) *models.MenuItem {
	item := f.Create()
	item.Name = name
	return item
}

// SupplierFactory provides methods to create test ProductSupplier data
type SupplierFactory struct{}

// NewSupplierFactory creates a new SupplierFactory
func NewSupplierFactory() *SupplierFactory {
	return &SupplierFactory{}
}

// Create creates a supplier without a tenant; the tenancy plugin assigns one
func (f *SupplierFactory) Create() *models.ProductSupplier {
	return &models.ProductSupplier{
		Name:         "Beans Co",
		ContactEmail: "orders@beans.example.com",
		Phone:        "+254-700-000000",
		Address:      "1 Roastery Lane",
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Tenant   *TenantFactory
	User     *UserFactory
	Session  *SessionFactory
	MenuItem *MenuItemFactory
	Supplier *SupplierFactory
}

// NewFactorySet creates a new FactorySet with all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Tenant:   NewTenantFactory(),
		User:     NewUserFactory(),
		Session:  NewSessionFactory(),
		MenuItem: NewMenuItemFactory(),
		Supplier: NewSupplierFactory(),
	}
}
