package database

import (
	"fmt"
	"time"

	"bizhub-backend/internal/database/models"
	"bizhub-backend/internal/tenancy"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrate     bool
	// DefaultTenant is used by the tenancy plugin when the context carries no tenant.
	DefaultTenant uuid.UUID
	// EnableRLS installs Postgres row-level-security policies after migration.
	EnableRLS bool
}

// Models lists every persisted model in migration order.
func Models() []interface{} {
	return []interface{}{
		&models.Tenant{},
		&models.Business{},
		&models.User{},
		&models.OnboardingProgress{},
		&models.UserSession{},
		&models.MenuItem{},
		&models.ProductSupplier{},
	}
}

// Initialize opens a Postgres connection, registers the tenancy plugin and
// creates the schema from GORM models.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}

	// Open DB
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(opts.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	if err := db.Use(NewTenancyPlugin(tenancy.NewResolver(opts.DefaultTenant))); err != nil {
		return nil, fmt.Errorf("register tenancy plugin: %w", err)
	}

	// Ensure required extension for UUID generation (used by BaseModel default gen_random_uuid())
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error

	if !opts.SkipMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
	}

	if opts.EnableRLS {
		if err := EnableRowLevelSecurity(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Migrate runs AutoMigrate for all models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
