package commands

import (
	"fmt"

	"ats-api/internal/database"

	"github.com/spf13/cobra"
)

// NewMigrateCommand creates the command that applies the embedded schema.
func NewMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "migrate",
		Args:    cobra.NoArgs,
		Aliases: []string{"m"},
		Short:   "Apply the database schema",
		Long:    `Create missing tables and seed the stage configuration and stats rows. Safe to run repeatedly.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			pool, err := database.NewConnectionPool(cmd.Context(), cfg.DB)
			if err != nil {
				return err
			}
			defer pool.Close()

			return database.Migrate(cmd.Context(), pool)
		},
	}
}
