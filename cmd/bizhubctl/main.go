// Command bizhubctl runs administrative tasks against the BizHub database.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bizhubctl",
		Short:         "bizhubctl - administrative tasks for the BizHub backend",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().Int("connect-attempts", 60, "Attempts to reach the database before giving up")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error); defaults to LOG_LEVEL")

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(rlsCmd())
	rootCmd.AddCommand(sessionsCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(tenantsCmd())

	return rootCmd
}
