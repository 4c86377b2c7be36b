package repository

import (
	"context"
	"errors"

	"bizhub-backend/internal/database"
	apperrors "bizhub-backend/internal/errors"
	"bizhub-backend/internal/tenancy"

	"gorm.io/gorm"
)

type txKey struct{}

// Transactor starts transactions and binds the tenant of the context to the
// Postgres session so row-level-security policies see the same tenant the
// tenancy plugin filters on.
type Transactor struct {
	db       *gorm.DB
	resolver *tenancy.Resolver
}

// NewTransactor creates a new transaction manager
func NewTransactor(db *gorm.DB, resolver *tenancy.Resolver) *Transactor {
	return &Transactor{db: db, resolver: resolver}
}

// WithinTransaction runs fn in a transaction. Nested calls join the outer transaction.
func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := t.bindTenant(ctx, tx); err != nil {
			return err
		}
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

func (t *Transactor) bindTenant(ctx context.Context, tx *gorm.DB) error {
	if tenancy.AllTenants(ctx) {
		return database.SetAllTenantsSession(tx)
	}
	tenantID, err := t.resolver.Resolve(ctx)
	if errors.Is(err, apperrors.ErrTenantContextMissing) {
		// Tenant-less transactions only touch tables outside RLS.
		return nil
	}
	if err != nil {
		return err
	}
	return database.SetTenantSession(tx, tenantID)
}

// conn returns the transaction carried on ctx, or db bound to ctx.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return db.WithContext(ctx)
}
