package main

import (
	"bizhub-backend/internal/database"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the schema from the models",
		Long: `Create or update the schema from the models.

Row-level-security policies are installed afterwards when ENABLE_RLS is set
or --rls is passed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			db, err := connect(cmd, cfg)
			if err != nil {
				return err
			}
			defer closeDB(db)

			withRLS, _ := cmd.Flags().GetBool("rls")
			if err := migrateSchema(db, withRLS || cfg.EnableRLS); err != nil {
				return err
			}

			logrus.Info("✅ Schema is up to date")
			return nil
		},
	}

	cmd.Flags().Bool("rls", false, "Install row-level-security policies after migrating")

	return cmd
}

func migrateSchema(db *gorm.DB, withRLS bool) error {
	logrus.Info("🚀 Running migrations...")
	if err := database.Migrate(db); err != nil {
		return err
	}
	if withRLS {
		if err := database.EnableRowLevelSecurity(db); err != nil {
			return err
		}
		logrus.Info("🔒 Row-level security enabled")
	}
	return nil
}
