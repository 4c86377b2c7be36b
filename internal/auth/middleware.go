package auth

import (
	"errors"
	"net/http"

	"bizhub-backend/internal/database/models"
	apperrors "bizhub-backend/internal/errors"
	"bizhub-backend/internal/logger"
	"bizhub-backend/internal/tenancy"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const principalKey = "auth_principal"

// AuthMiddleware authenticates requests with a set of strategies
type AuthMiddleware struct {
	strategies []Authenticator
}

// NewAuthMiddleware creates a new authentication middleware. Strategies are tried in order.
func NewAuthMiddleware(strategies ...Authenticator) *AuthMiddleware {
	return &AuthMiddleware{strategies: strategies}
}

// RequireAuth authenticates with the given strategies, or all configured ones
func (m *AuthMiddleware) RequireAuth(strategies ...Authenticator) gin.HandlerFunc {
	if len(strategies) == 0 {
		strategies = m.strategies
	}
	return func(c *gin.Context) {
		principal, err := authenticate(c, strategies)
		if err != nil {
			status := apperrors.HTTPStatus(err)
			if status == http.StatusInternalServerError {
				logger.WithContext(c.Request.Context()).WithError(err).Error("Authentication failed")
			}
			c.AbortWithStatusJSON(status, gin.H{"error": apperrors.PublicMessage(err)})
			return
		}
		setPrincipal(c, principal)
		c.Next()
	}
}

// OptionalAuth authenticates when credentials are valid but never rejects the request
func (m *AuthMiddleware) OptionalAuth(strategies ...Authenticator) gin.HandlerFunc {
	if len(strategies) == 0 {
		strategies = m.strategies
	}
	return func(c *gin.Context) {
		if principal, err := authenticate(c, strategies); err == nil {
			setPrincipal(c, principal)
		}
		c.Next()
	}
}

// authenticate returns the first principal any strategy accepts. When none does,
// the first real failure wins over missing credentials.
func authenticate(c *gin.Context, strategies []Authenticator) (*Principal, error) {
	var firstErr error
	for _, strategy := range strategies {
		principal, err := strategy.Authenticate(c)
		if err == nil {
			return principal, nil
		}
		if errors.Is(err, errNoCredentials) {
			continue
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return nil, apperrors.ErrMissingCredentials
}

// setPrincipal stores the principal on the gin context and binds the user,
// session and tenant to the request context.
func setPrincipal(c *gin.Context, principal *Principal) {
	c.Set(principalKey, principal)
	c.Set("user_id", principal.UserID.String())
	if principal.Email != "" {
		c.Set("email", principal.Email)
	}

	ctx := logger.ContextWithUser(c.Request.Context(), principal.UserID.String())
	if principal.Session != nil {
		ctx = logger.ContextWithSession(ctx, principal.Session.SessionID.String())
	}
	if principal.TenantID != nil {
		ctx = tenancy.WithTenant(ctx, *principal.TenantID)
	}
	c.Request = c.Request.WithContext(ctx)
}

// GetPrincipal is a helper function to extract the authenticated principal from context
func GetPrincipal(c *gin.Context) (*Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	principal, ok := value.(*Principal)
	return principal, ok
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	principal, ok := GetPrincipal(c)
	if !ok {
		return uuid.Nil, false
	}
	return principal.UserID, true
}

// GetUserEmail is a helper function to extract user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get("email")
	if !exists {
		return "", false
	}

	emailStr, ok := email.(string)
	return emailStr, ok
}

// GetSession is a helper function to extract the session that authenticated the request
func GetSession(c *gin.Context) (*models.UserSession, bool) {
	principal, ok := GetPrincipal(c)
	if !ok || principal.Session == nil {
		return nil, false
	}
	return principal.Session, true
}
