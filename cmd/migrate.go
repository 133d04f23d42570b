package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dtroode/stellar-wallet-server/database"
	"github.com/dtroode/stellar-wallet-server/internal/config"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations to DATABASE_DSN",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}

			if err := database.Migrate(cmd.Context(), cfg.Database.DSN); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}
