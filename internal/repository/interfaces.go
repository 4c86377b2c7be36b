package repository

import (
	"context"
	"time"

	"bizhub-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TransactorInterface runs fn inside a database transaction carried on ctx
type TransactorInterface interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// TenantRepositoryInterface defines the interface for tenant repository operations
type TenantRepositoryInterface interface {
	Create(ctx context.Context, tenant *models.Tenant) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error)
	GetByOwnerID(ctx context.Context, ownerID string) (*models.Tenant, error)
	GetAll(ctx context.Context, limit, offset int) ([]models.Tenant, int64, error)
	Update(ctx context.Context, tenant *models.Tenant) error
}

// BusinessRepositoryInterface defines the interface for business repository operations
type BusinessRepositoryInterface interface {
	Create(ctx context.Context, business *models.Business) error
	GetByTenantID(ctx context.Context, tenantID uuid.UUID) (*models.Business, error)
	Update(ctx context.Context, business *models.Business) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByAuth0Sub(ctx context.Context, sub string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

// OnboardingProgressRepositoryInterface defines the interface for onboarding progress repository operations
type OnboardingProgressRepositoryInterface interface {
	Create(ctx context.Context, progress *models.OnboardingProgress) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.OnboardingProgress, error)
	Update(ctx context.Context, progress *models.OnboardingProgress) error
}

// SessionRepositoryInterface defines the interface for user session repository operations
type SessionRepositoryInterface interface {
	Create(ctx context.Context, session *models.UserSession) error
	GetByID(ctx context.Context, sessionID uuid.UUID) (*models.UserSession, error)
	Update(ctx context.Context, session *models.UserSession) error
	Deactivate(ctx context.Context, sessionID uuid.UUID) error
	ActiveSessionIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	DeactivateByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	UpdateByUser(ctx context.Context, userID uuid.UUID, updates map[string]interface{}) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// MenuItemRepositoryInterface defines the interface for tenant-scoped menu item operations
type MenuItemRepositoryInterface interface {
	Create(ctx context.Context, item *models.MenuItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.MenuItem, error)
	GetByName(ctx context.Context, name string) (*models.MenuItem, error)
	GetAll(ctx context.Context, category string, limit, offset int) ([]models.MenuItem, int64, error)
	Update(ctx context.Context, item *models.MenuItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SupplierRepositoryInterface defines the interface for tenant-scoped supplier operations
type SupplierRepositoryInterface interface {
	Create(ctx context.Context, supplier *models.ProductSupplier) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ProductSupplier, error)
	GetByName(ctx context.Context, name string) (*models.ProductSupplier, error)
	GetAll(ctx context.Context, limit, offset int) ([]models.ProductSupplier, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
