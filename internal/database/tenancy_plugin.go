package database

import (
	"context"
	"reflect"
	"sync"

	"bizhub-backend/internal/database/models"
	"bizhub-backend/internal/tenancy"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

const tenantFieldName = "TenantID"

// TenancyPlugin scopes models embedding models.TenantAwareModel to the tenant
// resolved from the statement context. Creates get the tenant assigned when
// missing; queries, updates and deletes get a tenant_id condition unless the
// context was marked with tenancy.WithAllTenants.
type TenancyPlugin struct {
	resolver *tenancy.Resolver
	scoped   sync.Map // reflect.Type -> bool
}

// NewTenancyPlugin creates the plugin
func NewTenancyPlugin(resolver *tenancy.Resolver) *TenancyPlugin {
	if resolver == nil {
		resolver = tenancy.NewResolver(uuid.Nil)
	}
	return &TenancyPlugin{resolver: resolver}
}

// Name implements gorm.Plugin
func (p *TenancyPlugin) Name() string {
	return "tenancy"
}

// Initialize implements gorm.Plugin
func (p *TenancyPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	if err := cb.Create().Before("gorm:create").Register("tenancy:assign", p.assignTenant); err != nil {
		return err
	}
	if err := cb.Query().Before("gorm:query").Register("tenancy:query", p.scopeToTenant); err != nil {
		return err
	}
	if err := cb.Update().Before("gorm:update").Register("tenancy:update", p.scopeToTenant); err != nil {
		return err
	}
	if err := cb.Delete().Before("gorm:delete").Register("tenancy:delete", p.scopeToTenant); err != nil {
		return err
	}
	return cb.Row().Before("gorm:row").Register("tenancy:row", p.scopeToTenant)
}

func (p *TenancyPlugin) tenantField(db *gorm.DB) *schema.Field {
	if db.Error != nil || db.Statement == nil || db.Statement.Schema == nil {
		return nil
	}
	if !p.isScoped(db.Statement.Schema) {
		return nil
	}
	return db.Statement.Schema.LookUpField(tenantFieldName)
}

func (p *TenancyPlugin) isScoped(s *schema.Schema) bool {
	if v, ok := p.scoped.Load(s.ModelType); ok {
		return v.(bool)
	}
	_, ok := reflect.New(s.ModelType).Interface().(models.TenantScoped)
	p.scoped.Store(s.ModelType, ok)
	return ok
}

func (p *TenancyPlugin) assignTenant(db *gorm.DB) {
	field := p.tenantField(db)
	if field == nil {
		return
	}

	ctx := db.Statement.Context
	var (
		tenantID uuid.UUID
		resolved bool
	)
	assign := func(rv reflect.Value) error {
		if _, zero := field.ValueOf(ctx, rv); !zero {
			return nil
		}
		if !resolved {
			id, err := p.resolver.Resolve(ctx)
			if err != nil {
				return err
			}
			tenantID, resolved = id, true
		}
		return field.Set(ctx, rv, tenantID)
	}

	rv := db.Statement.ReflectValue
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			elem := reflect.Indirect(rv.Index(i))
			if elem.Kind() != reflect.Struct {
				continue
			}
			if err := assign(elem); err != nil {
				_ = db.AddError(err)
				return
			}
		}
	case reflect.Struct:
		if err := assign(rv); err != nil {
			_ = db.AddError(err)
		}
	}
}

func (p *TenancyPlugin) scopeToTenant(db *gorm.DB) {
	field := p.tenantField(db)
	if field == nil {
		return
	}
	ctx := db.Statement.Context
	if tenancy.AllTenants(ctx) {
		return
	}
	tenantID, err := p.resolver.Resolve(ctx)
	if err != nil {
		_ = db.AddError(err)
		return
	}
	db.Statement.AddClause(tenantCondition(field, tenantID))
}

func tenantCondition(field *schema.Field, tenantID uuid.UUID) clause.Where {
	return clause.Where{Exprs: []clause.Expression{
		clause.Eq{
			Column: clause.Column{Table: clause.CurrentTable, Name: field.DBName},
			Value:  tenantID,
		},
	}}
}

// ResolveTenant exposes the plugin's resolution rules to callers outside gorm callbacks.
func (p *TenancyPlugin) ResolveTenant(ctx context.Context) (uuid.UUID, error) {
	return p.resolver.Resolve(ctx)
}
