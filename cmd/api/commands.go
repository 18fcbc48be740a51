package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// --- migrate ---

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup()
		if err != nil {
			return err
		}
		defer a.close()

		applied, err := a.store.AppliedMigrations()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "database %s is at schema version %d\n", a.cfg.Database.Path, len(applied))
		return nil
	},
}

// --- insights ---

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Manage industry insights",
}

var insightsRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Regenerate industry insights",
	Long: `Regenerate industry insights.

Examples:
  api insights refresh
  api insights refresh --industry tech-software-development --industry finance`,
	RunE: func(cmd *cobra.Command, args []string) error {
		industries, _ := cmd.Flags().GetStringSlice("industry")

		a, err := setup()
		if err != nil {
			return err
		}
		defer a.close()
		if err := a.withAI(cmd.Context()); err != nil {
			return err
		}

		var n int
		if len(industries) > 0 {
			n, err = a.refresher.Refresh(cmd.Context(), industries...)
		} else {
			n, err = a.refresher.RefreshStale(cmd.Context())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "refreshed %d insight(s)\n", n)
		return err
	},
}
