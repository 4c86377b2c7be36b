package main

import (
	"bizhub-backend/internal/database"
	"bizhub-backend/internal/database/models"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func rlsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rls",
		Short: "Manage Postgres row-level-security policies on tenant-scoped tables",
	}

	cmd.AddCommand(rlsActionCmd("enable", "Install the tenant isolation policy", database.EnableRowLevelSecurity))
	cmd.AddCommand(rlsActionCmd("disable", "Drop the tenant isolation policy", database.DisableRowLevelSecurity))

	return cmd
}

func rlsActionCmd(use, short string, apply func(db *gorm.DB, tables ...string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [table...]",
		Short: short,
		Long: short + `.

Without arguments every tenant-scoped table is affected.`,
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

			tables := args
			if len(tables) == 0 {
				tables = models.TenantScopedTables
			}
			if err := apply(db, tables...); err != nil {
				return err
			}
			logrus.WithField("tables", tables).Infof("✅ Row-level security %sd", use)
			return nil
		},
	}
}
