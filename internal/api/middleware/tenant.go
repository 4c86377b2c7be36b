package middleware

import (
	"context"

	"bizhub-backend/internal/auth"
	"bizhub-backend/internal/database/models"
	apperrors "bizhub-backend/internal/errors"
	"bizhub-backend/internal/logger"
	"bizhub-backend/internal/metrics"
	"bizhub-backend/internal/tenancy"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TenantUsers loads the user behind a principal
type TenantUsers interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// TenantContext binds the caller's tenant to the request context. It runs after
// authentication. Principals without a tenant get the user's current tenant;
// users without one are told to finish onboarding. The configured default
// tenant only assigns rows and never authorizes a request.
func TenantContext(users TenantUsers) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if _, ok := tenancy.FromContext(ctx); ok {
			c.Next()
			return
		}

		principal, ok := auth.GetPrincipal(c)
		if !ok {
			abortWithError(c, apperrors.ErrMissingCredentials)
			return
		}

		user, err := users.GetByID(ctx, principal.UserID)
		if err != nil {
			if apperrors.IsNotFound(err) {
				err = apperrors.ErrInvalidToken
			}
			abortWithError(c, err)
			return
		}

		if user.TenantID == nil {
			metrics.TenantContextMissingTotal.Inc()
			abortWithError(c, apperrors.ErrOnboardingRequired)
			return
		}

		tenantID := *user.TenantID
		principal.TenantID = &tenantID
		c.Request = c.Request.WithContext(tenancy.WithTenant(ctx, tenantID))
		c.Next()
	}
}

func abortWithError(c *gin.Context, err error) {
	status := apperrors.HTTPStatus(err)
	if status >= 500 {
		logger.WithContext(c.Request.Context()).WithError(err).Error("Tenant context failed")
	}
	c.AbortWithStatusJSON(status, gin.H{"error": apperrors.PublicMessage(err)})
}
