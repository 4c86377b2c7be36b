package repository

import (
	"context"

	"bizhub-backend/internal/database/models"
	apperrors "bizhub-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BusinessRepository handles database operations for businesses
type BusinessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository creates a new business repository
func NewBusinessRepository(db *gorm.DB) *BusinessRepository {
	return &BusinessRepository{db: db}
}

// Create creates a new business
func (r *BusinessRepository) Create(ctx context.Context, business *models.Business) error {
	return createIfAbsent(conn(ctx, r.db), business, apperrors.ErrBusinessExists)
}

// GetByTenantID retrieves the business of a tenant
func (r *BusinessRepository) GetByTenantID(ctx context.Context, tenantID uuid.UUID) (*models.Business, error) {
	var business models.Business
	if err := conn(ctx, r.db).First(&business, "tenant_id = ?", tenantID).Error; err != nil {
		return nil, translate(err, apperrors.ErrBusinessNotFound, nil)
	}
	return &business, nil
}

// Update updates a business
func (r *BusinessRepository) Update(ctx context.Context, business *models.Business) error {
	return translate(conn(ctx, r.db).Save(business).Error, nil, apperrors.ErrBusinessExists)
}
