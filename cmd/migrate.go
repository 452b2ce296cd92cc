package main

import (
	"fmt"

	"foodshare/internal/infra/db"
	"foodshare/internal/infra/db/migrations"
	"foodshare/internal/pkg/config"

	"github.com/spf13/cobra"
)

func newMigrateCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the postgres schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, _ []string) error {
				pool, cleanup, err := db.Connect(cmd.Context(), cfg.DB)
				if err != nil {
					return err
				}
				defer cleanup()

				if err := migrations.MigrateUp(pool); err != nil {
					return err
				}
				status, err := migrations.CheckStatus(pool)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "schema at version %d\n", status.Version)
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show the applied and latest migration versions",
			RunE: func(cmd *cobra.Command, _ []string) error {
				pool, cleanup, err := db.Connect(cmd.Context(), cfg.DB)
				if err != nil {
					return err
				}
				defer cleanup()

				status, err := migrations.CheckStatus(pool)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version=%d latest=%d dirty=%t up_to_date=%t\n",
					status.Version, status.Latest, status.Dirty, status.UpToDate())
				return nil
			},
		},
	)
	return cmd
}
