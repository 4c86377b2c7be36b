package tenancy

import (
	"context"

	apperrors "bizhub-backend/internal/errors"

	"github.com/google/uuid"
)

// Resolver picks the tenant for a tenant-scoped operation: the tenant on the
// context first, then the configured default.
type Resolver struct {
	Default uuid.UUID
}

// NewResolver creates a resolver with an optional default tenant (uuid.Nil for none).
func NewResolver(defaultTenant uuid.UUID) *Resolver {
	return &Resolver{Default: defaultTenant}
}

// Resolve returns the tenant for ctx or ErrTenantContextMissing.
func (r *Resolver) Resolve(ctx context.Context) (uuid.UUID, error) {
	if id, ok := FromContext(ctx); ok {
		return id, nil
	}
	if r != nil && r.Default != uuid.Nil {
		return r.Default, nil
	}
	return uuid.Nil, apperrors.ErrTenantContextMissing
}
