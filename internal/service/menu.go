package service

import (
	"context"
	"fmt"

	"bizhub-backend/internal/database/models"
	apperrors "bizhub-backend/internal/errors"
	"bizhub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// MenuService handles business logic for the menu of the current tenant
type MenuService struct {
	repo      repository.MenuItemRepositoryInterface
	validator *validator.Validate
}

// NewMenuService creates a new menu service
func NewMenuService(repo repository.MenuItemRepositoryInterface, validator *validator.Validate) *MenuService {
	return &MenuService{
		repo:      repo,
		validator: validator,
	}
}

// CreateMenuItemRequest represents the request to create a menu item
type CreateMenuItemRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=255" example:"Espresso"`
	Description string `json:"description,omitempty" example:"Double shot"`
	PriceCents  int64  `json:"price_cents" validate:"min=0" example:"300"`
	Category    string `json:"category,omitempty" validate:"max=100" example:"drinks"`
	IsAvailable *bool  `json:"is_available,omitempty"`
}

// UpdateMenuItemRequest represents the request to update a menu item
type UpdateMenuItemRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty"`
	PriceCents  *int64  `json:"price_cents,omitempty" validate:"omitempty,min=0"`
	Category    *string `json:"category,omitempty" validate:"omitempty,max=100"`
	IsAvailable *bool   `json:"is_available,omitempty"`
}

// MenuItemListResponse represents a paginated list of menu items
type MenuItemListResponse struct {
	Items    []models.MenuItem `json:"items"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Create creates a menu item in the current tenant
func (s *MenuService) Create(ctx context.Context, req *CreateMenuItemRequest) (*models.MenuItem, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	// Check if a menu item with the same name exists
	existing, err := s.repo.GetByName(ctx, req.Name)
	if err != nil && !apperrors.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check existing menu item: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrMenuItemExists
	}

	item := &models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Category:    req.Category,
		IsAvailable: req.IsAvailable == nil || *req.IsAvailable,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}
	return item, nil
}

// GetByID retrieves a menu item of the current tenant
func (s *MenuService) GetByID(ctx context.Context, id uuid.UUID) (*models.MenuItem, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves menu items of the current tenant with pagination
func (s *MenuService) List(ctx context.Context, category string, page, pageSize int) (*MenuItemListResponse, error) {
	page, pageSize = normalizePage(page, pageSize)

	items, total, err := s.repo.GetAll(ctx, category, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	if items == nil {
		items = []models.MenuItem{}
	}

	return &MenuItemListResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update applies the given fields to a menu item of the current tenant
func (s *MenuService) Update(ctx context.Context, id uuid.UUID, req *UpdateMenuItemRequest) (*models.MenuItem, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != item.Name {
		existing, err := s.repo.GetByName(ctx, *req.Name)
		if err != nil && !apperrors.IsNotFound(err) {
			return nil, fmt.Errorf("failed to check existing menu item: %w", err)
		}
		if existing != nil && existing.ID != item.ID {
			return nil, apperrors.ErrMenuItemExists
		}
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.PriceCents != nil {
		item.PriceCents = *req.PriceCents
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	if err := s.repo.Update(ctx, item); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}
	return item, nil
}

// Delete deletes a menu item of the current tenant
func (s *MenuService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}
	return page, pageSize
}
