// Package seed loads demo tenants, owners and their tenant-scoped data from YAML.
package seed

import (
	"context"
	"fmt"
	"os"
	"time"

	"bizhub-backend/internal/auth"
	"bizhub-backend/internal/database/models"
	apperrors "bizhub-backend/internal/errors"
	"bizhub-backend/internal/onboarding"
	"bizhub-backend/internal/repository"
	"bizhub-backend/internal/tenancy"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Simple structures that map onto the seed file
type OwnerData struct {
	Email     string `yaml:"email" validate:"required,email"`
	Password  string `yaml:"password,omitempty"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
}

type BusinessData struct {
	Name           string `yaml:"name"`
	BusinessType   string `yaml:"business_type,omitempty"`
	Country        string `yaml:"country,omitempty"`
	LegalStructure string `yaml:"legal_structure,omitempty"`
	Industry       string `yaml:"industry,omitempty"`
	Phone          string `yaml:"phone,omitempty"`
}

type MenuItemData struct {
	Name        string `yaml:"name" validate:"required,max=255"`
	Description string `yaml:"description,omitempty"`
	PriceCents  int64  `yaml:"price_cents" validate:"min=0"`
	Category    string `yaml:"category,omitempty" validate:"max=100"`
	Available   *bool  `yaml:"available,omitempty"`
}

type SupplierData struct {
	Name         string `yaml:"name" validate:"required,max=255"`
	ContactEmail string `yaml:"contact_email,omitempty" validate:"omitempty,email"`
	Phone        string `yaml:"phone,omitempty"`
	Address      string `yaml:"address,omitempty"`
}

type TenantData struct {
	Name         string         `yaml:"name" validate:"required,max=255"`
	Owner        OwnerData      `yaml:"owner"`
	Business     BusinessData   `yaml:"business"`
	Plan         string         `yaml:"plan,omitempty"`
	BillingCycle string         `yaml:"billing_cycle,omitempty"`
	MenuItems    []MenuItemData `yaml:"menu_items,omitempty"`
	Suppliers    []SupplierData `yaml:"suppliers,omitempty"`
}

// File is the root of a seed file
type File struct {
	Tenants []TenantData `yaml:"tenants"`
}

// Result counts the rows created by one run
type Result struct {
	Tenants   int
	Users     int
	MenuItems int
	Suppliers int
}

// LoadFile reads and validates a seed file
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates seed YAML
func Parse(data []byte) (*File, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	v := validator.New()
	for i := range file.Tenants {
		if err := v.Struct(file.Tenants[i]); err != nil {
			return nil, fmt.Errorf("tenant %d: %w", i, err)
		}
		if err := v.Struct(file.Tenants[i].Owner); err != nil {
			return nil, fmt.Errorf("tenant %q owner: %w", file.Tenants[i].Name, err)
		}
		for _, item := range file.Tenants[i].MenuItems {
			if err := v.Struct(item); err != nil {
				return nil, fmt.Errorf("tenant %q menu item %q: %w", file.Tenants[i].Name, item.Name, err)
			}
		}
		for _, supplier := range file.Tenants[i].Suppliers {
			if err := v.Struct(supplier); err != nil {
				return nil, fmt.Errorf("tenant %q supplier %q: %w", file.Tenants[i].Name, supplier.Name, err)
			}
		}
	}
	return &file, nil
}

// Seeder writes seed data through the repositories. Rows that already exist
// are left as they are, so a seed file can be applied repeatedly.
type Seeder struct {
	tx         repository.TransactorInterface
	users      repository.UserRepositoryInterface
	tenants    repository.TenantRepositoryInterface
	businesses repository.BusinessRepositoryInterface
	progress   repository.OnboardingProgressRepositoryInterface
	menuItems  repository.MenuItemRepositoryInterface
	suppliers  repository.SupplierRepositoryInterface
	now        func() time.Time
}

// NewSeeder creates a new seeder
func NewSeeder(
	tx repository.TransactorInterface,
	users repository.UserRepositoryInterface,
	tenants repository.TenantRepositoryInterface,
	businesses repository.BusinessRepositoryInterface,
	progress repository.OnboardingProgressRepositoryInterface,
	menuItems repository.MenuItemRepositoryInterface,
	suppliers repository.SupplierRepositoryInterface,
) *Seeder {
	return &Seeder{
		tx:         tx,
		users:      users,
		tenants:    tenants,
		businesses: businesses,
		progress:   progress,
		menuItems:  menuItems,
		suppliers:  suppliers,
		now:        time.Now,
	}
}

// Seed applies every tenant in file and reports what was created
func (s *Seeder) Seed(ctx context.Context, file *File) (Result, error) {
	var result Result
	for _, data := range file.Tenants {
		if err := s.seedTenant(ctx, data, &result); err != nil {
			return result, fmt.Errorf("failed to seed tenant %s: %w", data.Name, err)
		}
	}
	return result, nil
}

func (s *Seeder) seedTenant(ctx context.Context, data TenantData, result *Result) error {
	owner, created, err := s.createOwner(ctx, data.Owner)
	if err != nil {
		return err
	}
	if created {
		result.Users++
	}

	tenant, created, err := s.createTenant(ctx, data.Name, owner)
	if err != nil {
		return err
	}
	if created {
		result.Tenants++
	}

	if err := s.completeOnboarding(ctx, data, owner, tenant); err != nil {
		return err
	}

	tenantCtx := tenancy.WithTenant(ctx, tenant.ID)
	return s.tx.WithinTransaction(tenantCtx, func(ctx context.Context) error {
		for _, item := range data.MenuItems {
			created, err := s.createMenuItem(ctx, item)
			if err != nil {
				return fmt.Errorf("menu item %s: %w", item.Name, err)
			}
			if created {
				result.MenuItems++
			}
		}
		for _, supplier := range data.Suppliers {
			created, err := s.createSupplier(ctx, supplier)
			if err != nil {
				return fmt.Errorf("supplier %s: %w", supplier.Name, err)
			}
			if created {
				result.Suppliers++
			}
		}
		return nil
	})
}

func (s *Seeder) createOwner(ctx context.Context, data OwnerData) (*models.User, bool, error) {
	existing, err := s.users.GetByEmail(ctx, data.Email)
	if err == nil {
		return existing, false, nil
	}
	if !apperrors.IsNotFound(err) {
		return nil, false, err
	}

	user := &models.User{
		Email:     data.Email,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Role:      models.UserRoleOwner,
		IsActive:  true,
	}
	if data.Password != "" {
		hash, err := auth.HashPassword(data.Password)
		if err != nil {
			return nil, false, err
		}
		user.PasswordHash = hash
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func (s *Seeder) createTenant(ctx context.Context, name string, owner *models.User) (*models.Tenant, bool, error) {
	existing, err := s.tenants.GetByOwnerID(ctx, owner.ID.String())
	if err == nil {
		return existing, false, nil
	}
	if !apperrors.IsNotFound(err) {
		return nil, false, err
	}

	tenant := &models.Tenant{Name: name, OwnerID: owner.ID.String(), IsActive: true}
	if err := s.tenants.Create(ctx, tenant); err != nil {
		return nil, false, err
	}
	return tenant, true, nil
}

// completeOnboarding attaches the business and marks the owner as fully onboarded
func (s *Seeder) completeOnboarding(ctx context.Context, data TenantData, owner *models.User, tenant *models.Tenant) error {
	if data.Business.Name != "" {
		_, err := s.businesses.GetByTenantID(ctx, tenant.ID)
		if apperrors.IsNotFound(err) {
			err = s.businesses.Create(ctx, &models.Business{
				TenantID:       tenant.ID,
				OwnerID:        owner.ID.String(),
				Name:           data.Business.Name,
				BusinessType:   data.Business.BusinessType,
				Country:        data.Business.Country,
				LegalStructure: data.Business.LegalStructure,
				Industry:       data.Business.Industry,
				Phone:          data.Business.Phone,
			})
		}
		if err != nil {
			return err
		}
	}

	progress, err := s.progress.GetByUserID(ctx, owner.ID)
	isNew := apperrors.IsNotFound(err)
	if err != nil && !isNew {
		return err
	}
	if isNew {
		progress = onboarding.New(owner.ID)
	}
	if !onboarding.IsComplete(progress) {
		onboarding.CompleteBusinessInfo(progress, tenant.ID)
		plan := models.SubscriptionPlan(data.Plan)
		if plan == "" {
			plan = models.PlanFree
		}
		if err := onboarding.SelectSubscription(progress, plan, models.BillingCycle(data.BillingCycle)); err != nil {
			return err
		}
		if plan.RequiresPayment() {
			if err := onboarding.CompletePayment(progress); err != nil {
				return err
			}
		}
		if err := onboarding.Complete(progress, tenant.ID, s.now()); err != nil {
			return err
		}
	}
	if isNew {
		err = s.progress.Create(ctx, progress)
	} else {
		err = s.progress.Update(ctx, progress)
	}
	if err != nil {
		return err
	}

	if owner.TenantID == nil || *owner.TenantID != tenant.ID || !owner.OnboardingCompleted {
		owner.TenantID = &tenant.ID
		owner.OnboardingCompleted = true
		if err := s.users.Update(ctx, owner); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) createMenuItem(ctx context.Context, data MenuItemData) (bool, error) {
	_, err := s.menuItems.GetByName(ctx, data.Name)
	if err == nil {
		return false, nil
	}
	if !apperrors.IsNotFound(err) {
		return false, err
	}
	available := true
	if data.Available != nil {
		available = *data.Available
	}
	item := &models.MenuItem{
		Name:        data.Name,
		Description: data.Description,
		PriceCents:  data.PriceCents,
		Category:    data.Category,
		IsAvailable: available,
	}
	if err := s.menuItems.Create(ctx, item); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Seeder) createSupplier(ctx context.Context, data SupplierData) (bool, error) {
	_, err := s.suppliers.GetByName(ctx, data.Name)
	if err == nil {
		return false, nil
	}
	if !apperrors.IsNotFound(err) {
		return false, err
	}
	supplier := &models.ProductSupplier{
		Name:         data.Name,
		ContactEmail: data.ContactEmail,
		Phone:        data.Phone,
		Address:      data.Address,
	}
	if err := s.suppliers.Create(ctx, supplier); err != nil {
		return false, err
	}
	logrus.WithField("supplier", data.Name).Debug("Seeded supplier")
	return true, nil
}
