package cmd

import (
	"fmt"

	"github.com/gatherhall/server/internal/storage/postgres"
	"github.com/spf13/cobra"
)

var (
	migrationsPath string
	migrateSteps   int
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [up|down]",
	Short: "Apply database migrations",
	Long: `Apply database migrations against DATABASE_URL.

Examples:
  # Apply all pending migrations
  server migrate up

  # Roll back the most recent migration
  server migrate down --steps 1`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"up", "down"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("config error: %w", err)
		}

		switch args[0] {
		case "up":
			return postgres.MigrateUp(cfg.Database.URL, migrationsPath)
		case "down":
			return postgres.MigrateDown(cfg.Database.URL, migrationsPath, migrateSteps)
		default:
			return fmt.Errorf("unknown direction %q", args[0])
		}
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrationsPath, "path", postgres.DefaultMigrationsPath, "migrations directory")
	migrateCmd.Flags().IntVar(&migrateSteps, "steps", 1, "number of migrations to roll back (down only)")
}
