package main

import (
	"bizhub-backend/internal/repository"
	"bizhub-backend/internal/seed"
	"bizhub-backend/internal/tenancy"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed [file]",
		Short: "Load demo tenants, owners, menus and suppliers from YAML",
		Long: `Load demo tenants, owners, menus and suppliers from YAML.

Existing rows are matched by owner email, tenant owner and item name and
left untouched, so the same file can be applied repeatedly.

Examples:
  bizhubctl seed
  bizhubctl seed scripts/data/seed.yaml --migrate`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "scripts/data/seed.yaml"
			if len(args) == 1 {
				path = args[0]
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			logrus.Infof("🚀 Loading seed data from %s...", path)
			file, err := seed.LoadFile(path)
			if err != nil {
				return err
			}

			db, err := connect(cmd, cfg)
			if err != nil {
				return err
			}
			defer closeDB(db)

			if withMigrate, _ := cmd.Flags().GetBool("migrate"); withMigrate {
				if err := migrateSchema(db, cfg.EnableRLS); err != nil {
					return err
				}
			}

			resolver := tenancy.NewResolver(cfg.DefaultTenant())
			transactor := repository.NewTransactor(db, resolver)
			seeder := seed.NewSeeder(
				transactor,
				repository.NewUserRepository(db),
				repository.NewTenantRepository(db),
				repository.NewBusinessRepository(db),
				repository.NewOnboardingProgressRepository(db),
				repository.NewMenuItemRepository(db, transactor),
				repository.NewSupplierRepository(db, transactor),
			)

			result, err := seeder.Seed(cmd.Context(), file)
			logrus.Infof("📋 Tenants: %d created, %d total", result.Tenants, len(file.Tenants))
			logrus.Infof("📋 Owners: %d created", result.Users)
			logrus.Infof("📋 Menu items: %d created", result.MenuItems)
			logrus.Infof("📋 Suppliers: %d created", result.Suppliers)
			if err != nil {
				return err
			}

			logrus.Info("✅ Seed data loaded successfully!")
			return nil
		},
	}

	cmd.Flags().Bool("migrate", false, "Run migrations before seeding")

	return cmd
}
