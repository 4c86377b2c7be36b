package repository

import (
	"context"

	"bizhub-backend/internal/database/models"
	apperrors "bizhub-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuItemRepository handles tenant-scoped database operations for menu items.
// Every call runs in a transaction so the tenant reaches the RLS policies.
type MenuItemRepository struct {
	db *gorm.DB
	tx TransactorInterface
}

// NewMenuItemRepository creates a new menu item repository
func NewMenuItemRepository(db *gorm.DB, tx TransactorInterface) *MenuItemRepository {
	return &MenuItemRepository{db: db, tx: tx}
}

// Create creates a new menu item in the current tenant
func (r *MenuItemRepository) Create(ctx context.Context, item *models.MenuItem) error {
	return r.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return translate(conn(ctx, r.db).Create(item).Error, nil, apperrors.ErrMenuItemExists)
	})
}

// GetByID retrieves a menu item of the current tenant
func (r *MenuItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return conn(ctx, r.db).First(&item, "id = ?", id).Error
	})
	if err != nil {
		return nil, translate(err, apperrors.ErrMenuItemNotFound, nil)
	}
	return &item, nil
}

// GetByName retrieves a menu item of the current tenant by name (case-insensitive)
func (r *MenuItemRepository) GetByName(ctx context.Context, name string) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return conn(ctx, r.db).First(&item, "LOWER(name) = LOWER(?)", name).Error
	})
	if err != nil {
		return nil, translate(err, apperrors.ErrMenuItemNotFound, nil)
	}
	return &item, nil
}

// GetAll retrieves menu items of the current tenant, optionally filtered by category
func (r *MenuItemRepository) GetAll(ctx context.Context, category string, limit, offset int) ([]models.MenuItem, int64, error) {
	var items []models.MenuItem
	var total int64

	err := r.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		query := conn(ctx, r.db).Model(&models.MenuItem{})
		if category != "" {
			query = query.Where("category = ?", category)
		}

		// Get total count
		if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
			return err
		}

		// Get paginated results
		return query.Session(&gorm.Session{}).Order("name").Limit(limit).Offset(offset).Find(&items).Error
	})
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// Update updates the mutable fields of a menu item of the current tenant
func (r *MenuItemRepository) Update(ctx context.Context, item *models.MenuItem) error {
	return r.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		result := conn(ctx, r.db).Model(item).
			Select("name", "description", "price_cents", "category", "is_available").
			Updates(item)
		if result.Error != nil {
			return translate(result.Error, nil, apperrors.ErrMenuItemExists)
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrMenuItemNotFound
		}
		return nil
	})
}

// Delete deletes a menu item of the current tenant
func (r *MenuItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		result := conn(ctx, r.db).Delete(&models.MenuItem{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrMenuItemNotFound
		}
		return nil
	})
}
