package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"bizhub-backend/internal/repository"
	"bizhub-backend/internal/tenancy"

	"github.com/spf13/cobra"
)

func tenantsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tenants",
		Short: "Inspect tenants",
	}

	cmd.AddCommand(tenantsListCmd())

	return cmd
}

func tenantsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tenants across the installation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			offset, _ := cmd.Flags().GetInt("offset")
			asJSON, _ := cmd.Flags().GetBool("json")

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			db, err := connect(cmd, cfg)
			if err != nil {
				return err
			}
			defer closeDB(db)

			ctx := tenancy.WithAllTenants(cmd.Context())
			tenants, total, err := repository.NewTenantRepository(db).GetAll(ctx, limit, offset)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string]interface{}{
					"tenants": tenants,
					"total":   total,
				})
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tOWNER\tACTIVE\tCREATED")
			for _, t := range tenants {
				fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%s\n", t.ID, t.Name, t.OwnerID, t.IsActive, t.CreatedAt.Format("2006-01-02"))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Printf("\n%d of %d tenants\n", len(tenants), total)
			return nil
		},
	}

	cmd.Flags().IntP("limit", "n", 50, "Maximum tenants to show")
	cmd.Flags().Int("offset", 0, "Tenants to skip")
	cmd.Flags().BoolP("json", "j", false, "Output as JSON")

	return cmd
}
