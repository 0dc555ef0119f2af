// Package commands is the car-rental command line: serve, migrate and seed.
package commands

import (
	"fmt"

	"car-rental-backend/config"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "car-rental",
		Short:         "Car rental booking backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(
		ServeCmd(),
		MigrateCmd(),
		SeedCmd(),
	)
	return rootCmd
}

// openDB connects and migrates; every subcommand needs an up-to-date schema.
func openDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		return nil, err
	}
	if err := config.Migrate(db); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return db, nil
}
