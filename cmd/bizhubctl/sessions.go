package main

import (
	"fmt"
	"time"

	"bizhub-backend/internal/repository"
	"bizhub-backend/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func sessionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Maintain user sessions",
	}

	cmd.AddCommand(sessionsPurgeCmd())

	return cmd
}

func sessionsPurgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete sessions that expired before a cutoff",
		Long: `Delete sessions that expired before a cutoff.

Examples:
  bizhubctl sessions purge
  bizhubctl sessions purge --older-than 168h`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			olderThan, _ := cmd.Flags().GetDuration("older-than")
			if olderThan < 0 {
				return fmt.Errorf("--older-than must not be negative")
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			db, err := connect(cmd, cfg)
			if err != nil {
				return err
			}
			defer closeDB(db)

			sessions := service.NewSessionService(
				repository.NewSessionRepository(db),
				repository.NewUserRepository(db),
				repository.NewOnboardingProgressRepository(db),
				nil,
				cfg.SessionTTL(),
			)

			cutoff := time.Now().Add(-olderThan)
			count, err := sessions.PurgeExpired(cmd.Context(), cutoff)
			if err != nil {
				return err
			}
			logrus.WithField("before", cutoff.Format(time.RFC3339)).Infof("🧹 Purged %d expired sessions", count)
			return nil
		},
	}

	cmd.Flags().Duration("older-than", 0, "Only purge sessions that expired at least this long ago")

	return cmd
}
