package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bizhub-backend/internal/auth"
	"bizhub-backend/internal/database/models"
	apperrors "bizhub-backend/internal/errors"
	"bizhub-backend/internal/logger"
	"bizhub-backend/internal/metrics"
	"bizhub-backend/internal/onboarding"
	"bizhub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	loginMethodPassword = "password"
	loginMethodOAuth    = "oauth"
	loginMethodSignup   = "signup"
)

// AccountService maps provider identities onto local users and opens sessions for them
type AccountService struct {
	users       repository.UserRepositoryInterface
	tenants     repository.TenantRepositoryInterface
	progress    repository.OnboardingProgressRepositoryInterface
	provider    auth.IdentityProvider
	sessions    SessionServiceInterface
	tokens      TokenIssuer
	validator   *validator.Validate
	allowSignup bool
}

// NewAccountService creates a new account service
func NewAccountService(
	users repository.UserRepositoryInterface,
	tenants repository.TenantRepositoryInterface,
	progress repository.OnboardingProgressRepositoryInterface,
	provider auth.IdentityProvider,
	sessions SessionServiceInterface,
	tokens TokenIssuer,
	validator *validator.Validate,
	allowSignup bool,
) *AccountService {
	return &AccountService{
		users:       users,
		tenants:     tenants,
		progress:    progress,
		provider:    provider,
		sessions:    sessions,
		tokens:      tokens,
		validator:   validator,
		allowSignup: allowSignup,
	}
}

// PasswordLoginRequest represents a login with email and password
type PasswordLoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=255" example:"owner@acme.example.com"`
	Password string `json:"password" validate:"required" example:"s3cret-pass"`
}

// OAuthExchangeRequest represents an authorization code exchange
type OAuthExchangeRequest struct {
	Code        string `json:"code" validate:"required"`
	RedirectURI string `json:"redirect_uri,omitempty" validate:"omitempty,url"`
}

// SignupRequest represents a local account registration
type SignupRequest struct {
	Email     string `json:"email" validate:"required,email,max=255" example:"owner@acme.example.com"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	FirstName string `json:"first_name,omitempty" validate:"max=100" example:"Ada"`
	LastName  string `json:"last_name,omitempty" validate:"max=100" example:"Lovelace"`
}

// LoginResponse is returned by every endpoint that opens or reads a session
type LoginResponse struct {
	SessionToken    string                `json:"session_token"`
	ExpiresAt       time.Time             `json:"expires_at"`
	AccessToken     string                `json:"access_token,omitempty"`
	User            *models.User          `json:"user"`
	Tenant          *models.Tenant        `json:"tenant"`
	NeedsOnboarding bool                  `json:"needs_onboarding"`
	OnboardingStep  models.OnboardingStep `json:"onboarding_step,omitempty"`
}

// ResolveIdentity finds the local user for an identity by subject, then by email,
// and creates an owner account when neither matches
func (s *AccountService) ResolveIdentity(ctx context.Context, identity *auth.Identity) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(identity.Email))
	if email == "" {
		return nil, apperrors.ErrIdentityEmailMissing
	}

	user, err := s.findUser(ctx, identity, email)
	if err != nil && !apperrors.IsNotFound(err) {
		return nil, err
	}
	if user == nil {
		user, err = s.createUser(ctx, identity, email)
		if err != nil {
			return nil, err
		}
	}

	if !user.IsActive {
		return nil, apperrors.ErrUserInactive
	}
	if _, err := getOrCreateProgress(ctx, s.progress, user.ID); err != nil {
		return nil, err
	}
	return user, nil
}

// PasswordLogin authenticates with the configured provider and opens a session
func (s *AccountService) PasswordLogin(ctx context.Context, req *PasswordLoginRequest, meta RequestMeta) (*LoginResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	resp, err := s.loginWith(ctx, meta, func() (*auth.Identity, error) {
		return s.provider.PasswordLogin(ctx, req.Email, req.Password)
	})
	metrics.RecordLogin(loginMethodPassword, err)
	return resp, err
}

// OAuthExchange trades an authorization code for an identity and opens a session
func (s *AccountService) OAuthExchange(ctx context.Context, req *OAuthExchangeRequest, meta RequestMeta) (*LoginResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	resp, err := s.loginWith(ctx, meta, func() (*auth.Identity, error) {
		return s.provider.ExchangeCode(ctx, req.Code, req.RedirectURI)
	})
	metrics.RecordLogin(loginMethodOAuth, err)
	return resp, err
}

// Signup registers a local account. Only available with the local provider.
func (s *AccountService) Signup(ctx context.Context, req *SignupRequest, meta RequestMeta) (*LoginResponse, error) {
	if !s.allowSignup || s.provider.Name() != auth.ProviderLocal {
		return nil, apperrors.ErrSignupDisabled
	}
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         models.UserRoleOwner,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		metrics.RecordLogin(loginMethodSignup, err)
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	if _, err := getOrCreateProgress(ctx, s.progress, user.ID); err != nil {
		return nil, err
	}

	resp, err := s.openSession(ctx, user, "", meta)
	metrics.RecordLogin(loginMethodSignup, err)
	return resp, err
}

// StartSession opens a session for an already authenticated user
func (s *AccountService) StartSession(ctx context.Context, userID uuid.UUID, accessToken string, meta RequestMeta) (*LoginResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrUserInactive
	}
	return s.openSession(ctx, user, accessToken, meta)
}

// SessionProfile describes the session and the user behind it
func (s *AccountService) SessionProfile(ctx context.Context, session *models.UserSession) (*LoginResponse, error) {
	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	resp, err := s.describe(ctx, user, session)
	if err != nil {
		return nil, err
	}
	if session.TenantID != nil && (resp.Tenant == nil || resp.Tenant.ID != *session.TenantID) {
		if tenant, err := s.tenants.GetByID(ctx, *session.TenantID); err == nil {
			resp.Tenant = tenant
		}
	}
	return resp, nil
}

func (s *AccountService) loginWith(ctx context.Context, meta RequestMeta, authenticate func() (*auth.Identity, error)) (*LoginResponse, error) {
	identity, err := authenticate()
	if err != nil {
		return nil, err
	}
	user, err := s.ResolveIdentity(ctx, identity)
	if err != nil {
		return nil, err
	}
	return s.openSession(ctx, user, identity.AccessToken, meta)
}

func (s *AccountService) openSession(ctx context.Context, user *models.User, accessToken string, meta RequestMeta) (*LoginResponse, error) {
	session, err := s.sessions.CreateSession(ctx, user, CreateSessionOptions{
		AccessToken: accessToken,
		Meta:        meta,
	})
	if err != nil {
		return nil, err
	}

	resp, err := s.describe(ctx, user, session)
	if err != nil {
		return nil, err
	}
	if s.tokens != nil {
		token, _, err := s.tokens.GenerateJWT(user)
		if err != nil {
			return nil, fmt.Errorf("failed to issue access token: %w", err)
		}
		resp.AccessToken = token
	}

	logger.WithContext(logger.ContextWithUser(ctx, user.ID.String())).WithFields(map[string]interface{}{
		"session_id":       session.SessionID.String(),
		"provider":         s.provider.Name(),
		"needs_onboarding": resp.NeedsOnboarding,
	}).Info("User logged in")
	return resp, nil
}

func (s *AccountService) describe(ctx context.Context, user *models.User, session *models.UserSession) (*LoginResponse, error) {
	resp := &LoginResponse{
		SessionToken:    session.SessionID.String(),
		ExpiresAt:       session.ExpiresAt,
		User:            user,
		NeedsOnboarding: onboarding.NeedsOnboarding(user),
		OnboardingStep:  models.OnboardingStep(session.OnboardingStep),
	}
	if !user.OnboardingCompleted && resp.OnboardingStep == "" {
		resp.OnboardingStep = models.StepBusinessInfo
	}
	if user.OnboardingCompleted {
		resp.OnboardingStep = models.StepComplete
	}

	if user.TenantID != nil {
		tenant, err := s.tenants.GetByID(ctx, *user.TenantID)
		switch {
		case err == nil:
			resp.Tenant = tenant
		case !apperrors.IsNotFound(err):
			return nil, fmt.Errorf("failed to load tenant: %w", err)
		}
	}
	return resp, nil
}

func (s *AccountService) findUser(ctx context.Context, identity *auth.Identity, email string) (*models.User, error) {
	if identity.Subject != "" {
		user, err := s.users.GetByAuth0Sub(ctx, identity.Subject)
		if err == nil {
			return user, nil
		}
		if !apperrors.IsNotFound(err) {
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if identity.Subject == "" {
		return user, nil
	}

	if user.Auth0Sub != nil && *user.Auth0Sub != identity.Subject {
		return nil, apperrors.ErrInvalidCredentials
	}
	// Linking an existing account to a new subject needs a verified email.
	if user.Auth0Sub == nil {
		if !identity.EmailVerified {
			return nil, apperrors.ErrEmailNotVerified
		}
		subject := identity.Subject
		user.Auth0Sub = &subject
		if err := s.users.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to link identity: %w", err)
		}
	}
	return user, nil
}

func (s *AccountService) createUser(ctx context.Context, identity *auth.Identity, email string) (*models.User, error) {
	user := &models.User{
		Email:     email,
		FirstName: identity.FirstName,
		LastName:  identity.LastName,
		Role:      models.UserRoleOwner,
		IsActive:  true,
	}
	if identity.Subject != "" {
		subject := identity.Subject
		user.Auth0Sub = &subject
	}

	err := s.users.Create(ctx, user)
	if err == nil {
		logger.WithContext(ctx).WithField("provider", identity.Provider).Info("Created user from identity")
		return user, nil
	}
	if !apperrors.IsAlreadyExists(err) {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Lost a race with a concurrent login for the same identity.
	existing, err := s.findUser(ctx, identity, email)
	if err != nil {
		return nil, err
	}
	return existing, nil
}
