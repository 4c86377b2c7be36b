package repository

import (
	"context"

	"bizhub-backend/internal/database/models"
	apperrors "bizhub-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantRepository handles database operations for tenants
type TenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(db *gorm.DB) *TenantRepository {
	return &TenantRepository{db: db}
}

// Create creates a new tenant
func (r *TenantRepository) Create(ctx context.Context, tenant *models.Tenant) error {
	return createIfAbsent(conn(ctx, r.db), tenant, apperrors.ErrTenantExists)
}

// GetByID retrieves a tenant by ID
func (r *TenantRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := conn(ctx, r.db).First(&tenant, "id = ?", id).Error; err != nil {
		return nil, translate(err, apperrors.ErrTenantNotFound, nil)
	}
	return &tenant, nil
}

// GetByOwnerID retrieves the tenant owned by a user
func (r *TenantRepository) GetByOwnerID(ctx context.Context, ownerID string) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := conn(ctx, r.db).First(&tenant, "owner_id = ?", ownerID).Error; err != nil {
		return nil, translate(err, apperrors.ErrTenantNotFound, nil)
	}
	return &tenant, nil
}

// GetAll retrieves all tenants with pagination
func (r *TenantRepository) GetAll(ctx context.Context, limit, offset int) ([]models.Tenant, int64, error) {
	var tenants []models.Tenant
	var total int64

	// Get total count
	if err := conn(ctx, r.db).Model(&models.Tenant{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	if err := conn(ctx, r.db).Preload("Business").Order("created_at").Limit(limit).Offset(offset).Find(&tenants).Error; err != nil {
		return nil, 0, err
	}

	return tenants, total, nil
}

// Update updates a tenant
func (r *TenantRepository) Update(ctx context.Context, tenant *models.Tenant) error {
	return translate(conn(ctx, r.db).Omit("Business").Save(tenant).Error, nil, apperrors.ErrTenantExists)
}
