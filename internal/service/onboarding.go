package service

import (
	"context"
	"fmt"
	"time"

	"bizhub-backend/internal/database/models"
	apperrors "bizhub-backend/internal/errors"
	"bizhub-backend/internal/logger"
	"bizhub-backend/internal/metrics"
	"bizhub-backend/internal/onboarding"
	"bizhub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// OnboardingService drives a user through business info, plan selection,
// payment and setup
type OnboardingService struct {
	transactor repository.TransactorInterface
	users      repository.UserRepositoryInterface
	tenants    repository.TenantRepositoryInterface
	businesses repository.BusinessRepositoryInterface
	progress   repository.OnboardingProgressRepositoryInterface
	sessions   SessionServiceInterface
	validator  *validator.Validate
	now        func() time.Time
}

// NewOnboardingService creates a new onboarding service
func NewOnboardingService(
	transactor repository.TransactorInterface,
	users repository.UserRepositoryInterface,
	tenants repository.TenantRepositoryInterface,
	businesses repository.BusinessRepositoryInterface,
	progress repository.OnboardingProgressRepositoryInterface,
	sessions SessionServiceInterface,
	validator *validator.Validate,
) *OnboardingService {
	return &OnboardingService{
		transactor: transactor,
		users:      users,
		tenants:    tenants,
		businesses: businesses,
		progress:   progress,
		sessions:   sessions,
		validator:  validator,
		now:        time.Now,
	}
}

// BusinessInfoRequest represents the business info step
type BusinessInfoRequest struct {
	BusinessName   string `json:"business_name" validate:"required,max=255" example:"Acme Coffee"`
	BusinessType   string `json:"business_type,omitempty" validate:"max=100" example:"cafe"`
	Country        string `json:"country,omitempty" validate:"max=100" example:"KE"`
	LegalStructure string `json:"legal_structure,omitempty" validate:"max=100"`
	Industry       string `json:"industry,omitempty" validate:"max=100"`
	Phone          string `json:"phone,omitempty" validate:"max=50"`
}

// SubscriptionRequest represents the plan selection step
type SubscriptionRequest struct {
	SelectedPlan models.SubscriptionPlan `json:"selected_plan" validate:"required" example:"free"`
	BillingCycle models.BillingCycle     `json:"billing_cycle,omitempty" example:"monthly"`
}

// SubmitBusinessInfo creates or updates the user's tenant and business and binds
// the user to the tenant
func (s *OnboardingService) SubmitBusinessInfo(ctx context.Context, userID uuid.UUID, req *BusinessInfoRequest) (*onboarding.Status, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	var user *models.User
	var progress *models.OnboardingProgress
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if user, err = s.users.GetByID(ctx, userID); err != nil {
			return err
		}
		if progress, err = s.progressFor(ctx, userID); err != nil {
			return err
		}

		tenant, err := s.ensureTenant(ctx, user, req.BusinessName)
		if err != nil {
			return err
		}
		if err := s.upsertBusiness(ctx, tenant, user, req); err != nil {
			return err
		}

		if user.TenantID == nil || *user.TenantID != tenant.ID {
			user.TenantID = &tenant.ID
			if err := s.users.Update(ctx, user); err != nil {
				return fmt.Errorf("failed to bind user to tenant: %w", err)
			}
		}

		onboarding.CompleteBusinessInfo(progress, tenant.ID)
		if err := s.progress.Update(ctx, progress); err != nil {
			return fmt.Errorf("failed to save onboarding progress: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.finishStep(ctx, models.StepBusinessInfo, progress, user), nil
}

// SelectSubscription records the chosen plan and billing cycle
func (s *OnboardingService) SelectSubscription(ctx context.Context, userID uuid.UUID, req *SubscriptionRequest) (*onboarding.Status, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	return s.advance(ctx, userID, models.StepSubscription, func(p *models.OnboardingProgress, _ *models.User) error {
		return onboarding.SelectSubscription(p, req.SelectedPlan, req.BillingCycle)
	})
}

// CompletePayment marks the payment step of a paid plan as done
func (s *OnboardingService) CompletePayment(ctx context.Context, userID uuid.UUID) (*onboarding.Status, error) {
	return s.advance(ctx, userID, models.StepPayment, func(p *models.OnboardingProgress, _ *models.User) error {
		return onboarding.CompletePayment(p)
	})
}

// Complete finishes onboarding. It is idempotent.
func (s *OnboardingService) Complete(ctx context.Context, userID uuid.UUID) (*onboarding.Status, error) {
	var user *models.User
	var progress *models.OnboardingProgress
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if user, err = s.users.GetByID(ctx, userID); err != nil {
			return err
		}
		if progress, err = s.progressFor(ctx, userID); err != nil {
			return err
		}

		tenantID, err := s.resolveTenant(ctx, user, progress)
		if err != nil {
			return err
		}
		if err := onboarding.Complete(progress, tenantID, s.now()); err != nil {
			return err
		}
		if err := s.progress.Update(ctx, progress); err != nil {
			return fmt.Errorf("failed to save onboarding progress: %w", err)
		}

		if !user.OnboardingCompleted || user.TenantID == nil || *user.TenantID != tenantID {
			user.OnboardingCompleted = true
			user.TenantID = &tenantID
			if err := s.users.Update(ctx, user); err != nil {
				return fmt.Errorf("failed to complete onboarding: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.finishStep(ctx, models.StepComplete, progress, user), nil
}

// GetStatus returns the onboarding snapshot, repairing a progress record that
// lags behind the user's completion flag
func (s *OnboardingService) GetStatus(ctx context.Context, userID uuid.UUID) (*onboarding.Status, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	progress, err := s.progressFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	if onboarding.Reconcile(progress, user, s.now()) {
		if err := s.progress.Update(ctx, progress); err != nil {
			return nil, fmt.Errorf("failed to save onboarding progress: %w", err)
		}
	}
	status := onboarding.Snapshot(progress, user)
	return &status, nil
}

func (s *OnboardingService) advance(
	ctx context.Context,
	userID uuid.UUID,
	step models.OnboardingStep,
	apply func(p *models.OnboardingProgress, u *models.User) error,
) (*onboarding.Status, error) {
	var user *models.User
	var progress *models.OnboardingProgress
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		if user, err = s.users.GetByID(ctx, userID); err != nil {
			return err
		}
		if progress, err = s.progressFor(ctx, userID); err != nil {
			return err
		}
		if err := apply(progress, user); err != nil {
			return err
		}
		if err := s.progress.Update(ctx, progress); err != nil {
			return fmt.Errorf("failed to save onboarding progress: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.finishStep(ctx, step, progress, user), nil
}

// finishStep pushes the new state onto the user's sessions and records the step
func (s *OnboardingService) finishStep(ctx context.Context, step models.OnboardingStep, progress *models.OnboardingProgress, user *models.User) *onboarding.Status {
	if err := s.sessions.SyncOnboarding(ctx, user); err != nil {
		logger.WithContext(ctx).WithError(err).Warn("Failed to sync onboarding state to sessions")
	}
	metrics.OnboardingStepsTotal.WithLabelValues(string(step)).Inc()
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"step":         string(step),
		"current_step": string(progress.CurrentStep),
	}).Info("Onboarding step completed")

	status := onboarding.Snapshot(progress, user)
	return &status
}

// progressFor returns the user's progress record, creating it on first use
func (s *OnboardingService) progressFor(ctx context.Context, userID uuid.UUID) (*models.OnboardingProgress, error) {
	return getOrCreateProgress(ctx, s.progress, userID)
}

func (s *OnboardingService) ensureTenant(ctx context.Context, user *models.User, name string) (*models.Tenant, error) {
	ownerID := user.ID.String()
	tenant, err := s.tenants.GetByOwnerID(ctx, ownerID)
	if err == nil {
		return tenant, nil
	}
	if !apperrors.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up tenant: %w", err)
	}

	tenant = &models.Tenant{Name: name, OwnerID: ownerID, IsActive: true}
	if err := s.tenants.Create(ctx, tenant); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return s.tenants.GetByOwnerID(ctx, ownerID)
		}
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}
	return tenant, nil
}

func (s *OnboardingService) upsertBusiness(ctx context.Context, tenant *models.Tenant, user *models.User, req *BusinessInfoRequest) error {
	business, err := s.businesses.GetByTenantID(ctx, tenant.ID)
	if err != nil && !apperrors.IsNotFound(err) {
		return fmt.Errorf("failed to look up business: %w", err)
	}
	if business == nil {
		business = &models.Business{TenantID: tenant.ID, OwnerID: user.ID.String()}
	}
	business.Name = req.BusinessName
	business.BusinessType = req.BusinessType
	business.Country = req.Country
	business.LegalStructure = req.LegalStructure
	business.Industry = req.Industry
	business.Phone = req.Phone

	if business.ID == uuid.Nil {
		if err := s.businesses.Create(ctx, business); err != nil {
			return fmt.Errorf("failed to create business: %w", err)
		}
		return nil
	}
	if err := s.businesses.Update(ctx, business); err != nil {
		return fmt.Errorf("failed to update business: %w", err)
	}
	return nil
}

// resolveTenant picks the tenant onboarding completes against: the one recorded
// on progress, then the user's own, then any tenant the user owns
func (s *OnboardingService) resolveTenant(ctx context.Context, user *models.User, progress *models.OnboardingProgress) (uuid.UUID, error) {
	if progress.TenantID != nil && *progress.TenantID != uuid.Nil {
		return *progress.TenantID, nil
	}
	if user.TenantID != nil && *user.TenantID != uuid.Nil {
		return *user.TenantID, nil
	}
	tenant, err := s.tenants.GetByOwnerID(ctx, user.ID.String())
	if err == nil {
		return tenant.ID, nil
	}
	if apperrors.IsNotFound(err) {
		return uuid.Nil, apperrors.ErrOnboardingTenantUnresolved
	}
	return uuid.Nil, fmt.Errorf("failed to resolve tenant: %w", err)
}

// getOrCreateProgress loads a user's progress, creating a fresh record when
// none exists. A concurrent create is resolved by re-reading.
func getOrCreateProgress(ctx context.Context, repo repository.OnboardingProgressRepositoryInterface, userID uuid.UUID) (*models.OnboardingProgress, error) {
	progress, err := repo.GetByUserID(ctx, userID)
	if err == nil {
		return progress, nil
	}
	if !apperrors.IsNotFound(err) {
		return nil, fmt.Errorf("failed to load onboarding progress: %w", err)
	}

	progress = onboarding.New(userID)
	if err := repo.Create(ctx, progress); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return repo.GetByUserID(ctx, userID)
		}
		return nil, fmt.Errorf("failed to create onboarding progress: %w", err)
	}
	return progress, nil
}
