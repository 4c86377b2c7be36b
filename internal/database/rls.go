package database

import (
	"fmt"

	"bizhub-backend/internal/database/models"
	"bizhub-backend/internal/tenancy"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const policyName = "tenant_isolation"

// policyCondition admits rows of the tenant bound with SetTenantSession, or every
// row inside a transaction bound with SetAllTenantsSession.
var policyCondition = fmt.Sprintf(
	"current_setting('%s', true) = 'on' OR tenant_id::text = current_setting('%s', true)",
	tenancy.AllTenantsSettingName, tenancy.SettingName,
)

// EnableRowLevelSecurity installs the tenant isolation policy on the given tables,
// defaulting to every tenant-scoped table. Policies are forced so the table owner
// is subject to them as well.
func EnableRowLevelSecurity(db *gorm.DB, tables ...string) error {
	if len(tables) == 0 {
		tables = models.TenantScopedTables
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, table := range tables {
			quoted := tx.Statement.Quote(table)
			statements := []string{
				fmt.Sprintf("ALTER TABLE %s ENABLE ROW LEVEL SECURITY", quoted),
				fmt.Sprintf("ALTER TABLE %s FORCE ROW LEVEL SECURITY", quoted),
				fmt.Sprintf("DROP POLICY IF EXISTS %s ON %s", policyName, quoted),
				fmt.Sprintf("CREATE POLICY %s ON %s USING (%s) WITH CHECK (%s)", policyName, quoted, policyCondition, policyCondition),
			}
			for _, stmt := range statements {
				if err := tx.Exec(stmt).Error; err != nil {
					return fmt.Errorf("enable rls on %s: %w", table, err)
				}
			}
		}
		return nil
	})
}

// DisableRowLevelSecurity drops the tenant isolation policy from the given tables.
func DisableRowLevelSecurity(db *gorm.DB, tables ...string) error {
	if len(tables) == 0 {
		tables = models.TenantScopedTables
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, table := range tables {
			quoted := tx.Statement.Quote(table)
			statements := []string{
				fmt.Sprintf("DROP POLICY IF EXISTS %s ON %s", policyName, quoted),
				fmt.Sprintf("ALTER TABLE %s NO FORCE ROW LEVEL SECURITY", quoted),
				fmt.Sprintf("ALTER TABLE %s DISABLE ROW LEVEL SECURITY", quoted),
			}
			for _, stmt := range statements {
				if err := tx.Exec(stmt).Error; err != nil {
					return fmt.Errorf("disable rls on %s: %w", table, err)
				}
			}
		}
		return nil
	})
}

// SetTenantSession binds tenantID to the current transaction. The setting is
// transaction-local and disappears on commit or rollback.
func SetTenantSession(tx *gorm.DB, tenantID uuid.UUID) error {
	return tx.Exec("SELECT set_config(?, ?, true)", tenancy.SettingName, tenancy.FormatSetting(tenantID)).Error
}

// SetAllTenantsSession lifts the isolation policy for the current transaction.
func SetAllTenantsSession(tx *gorm.DB) error {
	return tx.Exec("SELECT set_config(?, 'on', true)", tenancy.AllTenantsSettingName).Error
}

// CurrentTenantSetting reads the tenant bound to the current transaction.
func CurrentTenantSetting(tx *gorm.DB) (uuid.UUID, bool, error) {
	var raw string
	if err := tx.Raw("SELECT COALESCE(current_setting(?, true), '')", tenancy.SettingName).Scan(&raw).Error; err != nil {
		return uuid.Nil, false, fmt.Errorf("read %s: %w", tenancy.SettingName, err)
	}
	return tenancy.ParseSetting(raw)
}
