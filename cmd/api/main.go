// @title           Pravartak-AI Career Coaching API
// @version         1.0
// @description     Mock interviews, CV analysis, career roadmaps, counselling chat and industry insights.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
// @description     Type "Bearer" followed by a space and the JWT token.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "api",
	Short: "Pravartak-AI career coaching backend",
	Long: `Pravartak-AI career coaching backend.

Without a subcommand the HTTP server is started.

Examples:
  api serve --config config.yaml
  api migrate
  api insights refresh --industry tech-software-development`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to the yaml config file")
	rootCmd.AddCommand(serveCmd, migrateCmd, insightsCmd)
	insightsCmd.AddCommand(insightsRefreshCmd)
	insightsRefreshCmd.Flags().StringSlice("industry", nil, "industries to regenerate (default: every stale one)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
