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

// SupplierService handles business logic for product suppliers of the current tenant
type SupplierService struct {
	repo      repository.SupplierRepositoryInterface
	validator *validator.Validate
}

// NewSupplierService creates a new supplier service
func NewSupplierService(repo repository.SupplierRepositoryInterface, validator *validator.Validate) *SupplierService {
	return &SupplierService{
		repo:      repo,
		validator: validator,
	}
}

// CreateSupplierRequest represents the request to create a supplier
type CreateSupplierRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=255" example:"Beans Co"`
	ContactEmail string `json:"contact_email,omitempty" validate:"omitempty,email,max=255" example:"orders@beans.example.com"`
	Phone        string `json:"phone,omitempty" validate:"max=50"`
	Address      string `json:"address,omitempty"`
}

// SupplierListResponse represents a paginated list of suppliers
type SupplierListResponse struct {
	Suppliers []models.ProductSupplier `json:"suppliers"`
	Total     int64                    `json:"total"`
	Page      int                      `json:"page"`
	PageSize  int                      `json:"page_size"`
}

// Create creates a supplier in the current tenant
func (s *SupplierService) Create(ctx context.Context, req *CreateSupplierRequest) (*models.ProductSupplier, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByName(ctx, req.Name)
	if err != nil && !apperrors.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check existing supplier: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrSupplierExists
	}

	supplier := &models.ProductSupplier{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		Phone:        req.Phone,
		Address:      req.Address,
	}
	if err := s.repo.Create(ctx, supplier); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}
	return supplier, nil
}

// GetByID retrieves a supplier of the current tenant
func (s *SupplierService) GetByID(ctx context.Context, id uuid.UUID) (*models.ProductSupplier, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves suppliers of the current tenant with pagination
func (s *SupplierService) List(ctx context.Context, page, pageSize int) (*SupplierListResponse, error) {
	page, pageSize = normalizePage(page, pageSize)

	suppliers, total, err := s.repo.GetAll(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	if suppliers == nil {
		suppliers = []models.ProductSupplier{}
	}

	return &SupplierListResponse{
		Suppliers: suppliers,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Delete deletes a supplier of the current tenant
func (s *SupplierService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
