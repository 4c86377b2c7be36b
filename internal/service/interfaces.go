package service

import (
	"context"
	"time"

	"bizhub-backend/internal/auth"
	"bizhub-backend/internal/database/models"
	"bizhub-backend/internal/onboarding"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// SessionServiceInterface defines the interface for session service
type SessionServiceInterface interface {
	CreateSession(ctx context.Context, user *models.User, opts CreateSessionOptions) (*models.UserSession, error)
	GetValidSession(ctx context.Context, sessionID uuid.UUID) (*models.UserSession, error)
	ExtendSession(ctx context.Context, sessionID uuid.UUID, hours int) (*models.UserSession, error)
	UpdateSession(ctx context.Context, sessionID uuid.UUID, req *UpdateSessionRequest) (*models.UserSession, error)
	InvalidateSession(ctx context.Context, sessionID uuid.UUID) error
	InvalidateUserSessions(ctx context.Context, userID uuid.UUID) (int64, error)
	SyncOnboarding(ctx context.Context, user *models.User) error
	PurgeExpired(ctx context.Context, before time.Time) (int64, error)
}

// OnboardingServiceInterface defines the interface for onboarding service
type OnboardingServiceInterface interface {
	SubmitBusinessInfo(ctx context.Context, userID uuid.UUID, req *BusinessInfoRequest) (*onboarding.Status, error)
	SelectSubscription(ctx context.Context, userID uuid.UUID, req *SubscriptionRequest) (*onboarding.Status, error)
	CompletePayment(ctx context.Context, userID uuid.UUID) (*onboarding.Status, error)
	Complete(ctx context.Context, userID uuid.UUID) (*onboarding.Status, error)
	GetStatus(ctx context.Context, userID uuid.UUID) (*onboarding.Status, error)
}

// AccountServiceInterface defines the interface for account service
type AccountServiceInterface interface {
	ResolveIdentity(ctx context.Context, identity *auth.Identity) (*models.User, error)
	PasswordLogin(ctx context.Context, req *PasswordLoginRequest, meta RequestMeta) (*LoginResponse, error)
	OAuthExchange(ctx context.Context, req *OAuthExchangeRequest, meta RequestMeta) (*LoginResponse, error)
	Signup(ctx context.Context, req *SignupRequest, meta RequestMeta) (*LoginResponse, error)
	StartSession(ctx context.Context, userID uuid.UUID, accessToken string, meta RequestMeta) (*LoginResponse, error)
	SessionProfile(ctx context.Context, session *models.UserSession) (*LoginResponse, error)
}

// MenuServiceInterface defines the interface for menu service
type MenuServiceInterface interface {
	Create(ctx context.Context, req *CreateMenuItemRequest) (*models.MenuItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.MenuItem, error)
	List(ctx context.Context, category string, page, pageSize int) (*MenuItemListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateMenuItemRequest) (*models.MenuItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SupplierServiceInterface defines the interface for supplier service
type SupplierServiceInterface interface {
	Create(ctx context.Context, req *CreateSupplierRequest) (*models.ProductSupplier, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.ProductSupplier, error)
	List(ctx context.Context, page, pageSize int) (*SupplierListResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TokenIssuer issues API bearer tokens for users
type TokenIssuer interface {
	GenerateJWT(user *models.User) (string, time.Time, error)
}

// SessionCache caches validated sessions
type SessionCache interface {
	Get(ctx context.Context, sessionID uuid.UUID) (*models.UserSession, error)
	Put(ctx context.Context, session *models.UserSession) error
	Delete(ctx context.Context, sessionIDs ...uuid.UUID) error
}
