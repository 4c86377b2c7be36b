package auth

import (
	"context"
	"errors"
	"strings"

	"bizhub-backend/internal/database/models"
	apperrors "bizhub-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

//go:generate mockgen -source=strategy.go -destination=../mocks/auth_strategy_mocks.go -package=mocks

// Authentication methods
const (
	MethodSession = "session"
	MethodBearer  = "bearer"
)

// errNoCredentials means a strategy found nothing it can authenticate
var errNoCredentials = errors.New("no credentials for strategy")

// Principal is the authenticated caller of a request
type Principal struct {
	UserID   uuid.UUID
	Email    string
	Role     models.UserRole
	TenantID *uuid.UUID
	Method   string

	// Set by the strategy that authenticated the request
	Session  *models.UserSession
	Claims   *AuthClaims
	Identity *Identity
}

// Authenticator is one way of authenticating a request
type Authenticator interface {
	Name() string
	Authenticate(c *gin.Context) (*Principal, error)
}

// SessionValidator returns sessions that are active and unexpired
type SessionValidator interface {
	GetValidSession(ctx context.Context, sessionID uuid.UUID) (*models.UserSession, error)
}

// SessionAuthenticator accepts "Authorization: Session <token>" or the session cookie
type SessionAuthenticator struct {
	sessions   SessionValidator
	cookieName string
}

// NewSessionAuthenticator creates a session strategy
func NewSessionAuthenticator(sessions SessionValidator, cookieName string) *SessionAuthenticator {
	return &SessionAuthenticator{sessions: sessions, cookieName: cookieName}
}

// Name implements Authenticator
func (a *SessionAuthenticator) Name() string {
	return MethodSession
}

// Authenticate implements Authenticator
func (a *SessionAuthenticator) Authenticate(c *gin.Context) (*Principal, error) {
	raw := SessionToken(c, a.cookieName)
	if raw == "" {
		return nil, errNoCredentials
	}
	sessionID, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperrors.ErrInvalidSessionToken
	}

	session, err := a.sessions.GetValidSession(c.Request.Context(), sessionID)
	if apperrors.IsNotFound(err) {
		return nil, apperrors.ErrInvalidSessionToken
	}
	if err != nil {
		return nil, err
	}

	return &Principal{
		UserID:   session.UserID,
		TenantID: session.TenantID,
		Method:   MethodSession,
		Session:  session,
	}, nil
}

// BearerAuthenticator accepts the service's own JWTs and, when a verifier is
// configured, access tokens of the external identity provider.
type BearerAuthenticator struct {
	tokens     *TokenService
	verifier   AccessTokenVerifier
	identities IdentityResolver
}

// NewBearerAuthenticator creates a bearer strategy. verifier and identities may be nil.
func NewBearerAuthenticator(tokens *TokenService, verifier AccessTokenVerifier, identities IdentityResolver) *BearerAuthenticator {
	return &BearerAuthenticator{tokens: tokens, verifier: verifier, identities: identities}
}

// Name implements Authenticator
func (a *BearerAuthenticator) Name() string {
	return MethodBearer
}

// Authenticate implements Authenticator
func (a *BearerAuthenticator) Authenticate(c *gin.Context) (*Principal, error) {
	raw, ok := authorizationValue(c, "Bearer")
	if !ok {
		return nil, errNoCredentials
	}
	if raw == "" {
		return nil, apperrors.ErrInvalidToken
	}

	claims, err := a.tokens.ValidateJWT(raw)
	if err == nil {
		return claims.Principal(), nil
	}
	if a.verifier == nil || a.identities == nil {
		return nil, err
	}

	ctx := c.Request.Context()
	identity, err := a.verifier.VerifyAccessToken(ctx, raw)
	if err != nil {
		return nil, err
	}
	user, err := a.identities.ResolveIdentity(ctx, identity)
	if err != nil {
		return nil, err
	}
	return &Principal{
		UserID:   user.ID,
		Email:    user.Email,
		Role:     user.Role,
		TenantID: user.TenantID,
		Method:   MethodBearer,
		Identity: identity,
	}, nil
}

// SessionToken extracts the session token from the Authorization header or the cookie
func SessionToken(c *gin.Context, cookieName string) string {
	if token, ok := authorizationValue(c, "Session"); ok {
		return token
	}
	if cookieName == "" {
		return ""
	}
	if cookie, err := c.Cookie(cookieName); err == nil {
		return strings.TrimSpace(cookie)
	}
	return ""
}

// authorizationValue returns the credentials of an Authorization header using scheme
func authorizationValue(c *gin.Context, scheme string) (string, bool) {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if !strings.EqualFold(parts[0], scheme) {
		return "", false
	}
	if len(parts) == 1 {
		return "", true
	}
	return strings.TrimSpace(parts[1]), true
}
