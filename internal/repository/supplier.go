package repository

import (
	"context"

	"bizhub-backend/internal/database/models"
	apperrors "bizhub-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SupplierRepository handles tenant-scoped database operations for product suppliers
type SupplierRepository struct {
	db *gorm.DB
	tx TransactorInterface
}

// NewSupplierRepository creates a new supplier repository
func NewSupplierRepository(db *gorm.DB, tx TransactorInterface) *SupplierRepository {
	return &SupplierRepository{db: db, tx: tx}
}

// Create creates a new supplier in the current tenant
func (r *SupplierRepository) Create(ctx context.Context, supplier *models.ProductSupplier) error {
	return r.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return translate(conn(ctx, r.db).Create(supplier).Error, nil, apperrors.ErrSupplierExists)
	})
}

// GetByID retrieves a supplier of the current tenant
func (r *SupplierRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ProductSupplier, error) {
	var supplier models.ProductSupplier
	err := r.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return conn(ctx, r.db).First(&supplier, "id = ?", id).Error
	})
	if err != nil {
		return nil, translate(err, apperrors.ErrSupplierNotFound, nil)
	}
	return &supplier, nil
}

// GetByName retrieves a supplier of the current tenant by name (case-insensitive)
func (r *SupplierRepository) GetByName(ctx context.Context, name string) (*models.ProductSupplier, error) {
	var supplier models.ProductSupplier
	err := r.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return conn(ctx, r.db).First(&supplier, "LOWER(name) = LOWER(?)", name).Error
	})
	if err != nil {
		return nil, translate(err, apperrors.ErrSupplierNotFound, nil)
	}
	return &supplier, nil
}

// GetAll retrieves suppliers of the current tenant with pagination
func (r *SupplierRepository) GetAll(ctx context.Context, limit, offset int) ([]models.ProductSupplier, int64, error) {
	var suppliers []models.ProductSupplier
	var total int64

	err := r.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := conn(ctx, r.db).Model(&models.ProductSupplier{}).Count(&total).Error; err != nil {
			return err
		}
		return conn(ctx, r.db).Order("name").Limit(limit).Offset(offset).Find(&suppliers).Error
	})
	if err != nil {
		return nil, 0, err
	}

	return suppliers, total, nil
}

// Delete deletes a supplier of the current tenant
func (r *SupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		result := conn(ctx, r.db).Delete(&models.ProductSupplier{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrSupplierNotFound
		}
		return nil
	})
}
