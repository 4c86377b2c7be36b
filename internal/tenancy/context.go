// Package tenancy carries the current tenant explicitly on context.Context.
package tenancy

import (
	"context"

	"github.com/google/uuid"
)

type contextKey int

const (
	tenantKey contextKey = iota
	allTenantsKey
)

// WithTenant returns a copy of ctx scoped to tenantID.
func WithTenant(ctx context.Context, tenantID uuid.UUID) context.Context {
	return context.WithValue(ctx, tenantKey, tenantID)
}

// FromContext returns the tenant stored in ctx. uuid.Nil is treated as absent.
func FromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(tenantKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithAllTenants marks ctx as administrative: tenant filtering is skipped.
func WithAllTenants(ctx context.Context) context.Context {
	return context.WithValue(ctx, allTenantsKey, true)
}

// AllTenants reports whether ctx bypasses tenant filtering.
func AllTenants(ctx context.Context) bool {
	all, _ := ctx.Value(allTenantsKey).(bool)
	return all
}
