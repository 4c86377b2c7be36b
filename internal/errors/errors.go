package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// UpstreamError wraps a failure of an external identity or payment service.
type UpstreamError struct {
	Service string
	Timeout bool
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("%s request timed out", e.Service)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s request failed: %v", e.Service, e.Err)
	}
	return fmt.Sprintf("%s request failed", e.Service)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrTenantNotFound             = &NotFoundError{Entity: "tenant"}
	ErrBusinessNotFound           = &NotFoundError{Entity: "business"}
	ErrUserNotFound               = &NotFoundError{Entity: "user"}
	ErrOnboardingProgressNotFound = &NotFoundError{Entity: "onboarding progress"}
	ErrSessionNotFound            = &NotFoundError{Entity: "session"}
	ErrMenuItemNotFound           = &NotFoundError{Entity: "menu item"}
	ErrSupplierNotFound           = &NotFoundError{Entity: "supplier"}
)

// Already Exists Errors
var (
	ErrUserExists               = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrTenantExists             = &AlreadyExistsError{Entity: "tenant", Context: "for this owner"}
	ErrBusinessExists           = &AlreadyExistsError{Entity: "business", Context: "for this tenant"}
	ErrOnboardingProgressExists = &AlreadyExistsError{Entity: "onboarding progress", Context: "for this user"}
	ErrMenuItemExists           = &AlreadyExistsError{Entity: "menu item", Context: "with this name"}
	ErrSupplierExists           = &AlreadyExistsError{Entity: "supplier", Context: "with this name"}
)

// Tenancy Errors
var (
	ErrTenantContextMissing = errors.New("no tenant in context and no default tenant configured")
	ErrInvalidTenantSetting = errors.New("invalid tenant setting")
	ErrTenantMismatch       = &AuthorizationError{Message: "tenant does not belong to user"}
	ErrOnboardingRequired   = &AuthorizationError{Message: "onboarding required"}
)

// Onboarding Errors
var (
	ErrOnboardingTenantUnresolved = errors.New("onboarding cannot complete without a tenant")
	ErrInvalidPlan                = &ValidationError{Field: "selected_plan", Message: "must be one of free, professional, enterprise"}
	ErrInvalidBillingCycle        = &ValidationError{Field: "billing_cycle", Message: "must be monthly or annual"}
	ErrPlanNotSelected            = &ValidationError{Field: "selected_plan", Message: "a subscription plan must be selected first"}
	ErrPaymentNotRequired         = &ValidationError{Field: "selected_plan", Message: "free plan does not require payment"}
	ErrBusinessInfoRequired       = &ValidationError{Field: "business_name", Message: "business info step must be completed first"}
)

// Session Errors
var (
	ErrSessionExpired      = &AuthenticationError{Message: "session has expired"}
	ErrSessionInactive     = &AuthenticationError{Message: "session is no longer active"}
	ErrInvalidSessionToken = &AuthenticationError{Message: "invalid session token"}
	ErrInvalidExtension    = &ValidationError{Field: "hours", Message: "must be between 1 and 720"}
)

// Authentication Errors
var (
	ErrMissingCredentials   = &AuthenticationError{Message: "authentication credentials were not provided"}
	ErrInvalidCredentials   = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidToken         = &AuthenticationError{Message: "invalid token"}
	ErrUserInactive         = &AuthorizationError{Message: "user account is disabled"}
	ErrIdentityEmailMissing = &AuthenticationError{Message: "identity token has no email claim"}
	ErrEmailNotVerified     = &AuthenticationError{Message: "email address is not verified"}
	ErrSignupDisabled       = &AuthorizationError{Message: "local signup is disabled"}
)

// Configuration Errors
var (
	ErrAuth0NotConfigured = &ConfigurationError{Message: "auth0 is not configured: AUTH0_DOMAIN, AUTH0_CLIENT_ID or AUTH0_CLIENT_SECRET"}
	ErrJWTSecretMissing   = &ConfigurationError{Message: "JWT secret is required"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsUpstream checks if an error is an UpstreamError
func IsUpstream(err error) bool {
	var upstreamErr *UpstreamError
	return errors.As(err, &upstreamErr)
}

// HTTPStatus maps an application error to the status code returned to clients.
func HTTPStatus(err error) int {
	var upstreamErr *UpstreamError
	switch {
	case err == nil:
		return http.StatusOK
	case IsValidation(err):
		return http.StatusBadRequest
	case IsAuthentication(err):
		return http.StatusUnauthorized
	case IsAuthorization(err):
		return http.StatusForbidden
	case IsNotFound(err):
		return http.StatusNotFound
	case IsAlreadyExists(err):
		return http.StatusConflict
	case errors.As(err, &upstreamErr):
		if upstreamErr.Timeout {
			return http.StatusGatewayTimeout
		}
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the message that is safe to expose to clients.
// Unexpected errors are reduced to a generic message.
func PublicMessage(err error) string {
	var upstreamErr *UpstreamError
	switch {
	case HTTPStatus(err) == http.StatusInternalServerError:
		return "internal server error"
	case errors.As(err, &upstreamErr):
		if upstreamErr.Timeout {
			return fmt.Sprintf("%s request timed out", upstreamErr.Service)
		}
		return fmt.Sprintf("%s is unavailable", upstreamErr.Service)
	}
	return err.Error()
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewUpstreamError wraps a failed call to an external service.
func NewUpstreamError(service string, err error) error {
	var timeoutErr interface{ Timeout() bool }
	timeout := errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &timeoutErr) && timeoutErr.Timeout())
	return &UpstreamError{
		Service: service,
		Timeout: timeout,
		Err:     err,
	}
}
