package commands

import (
	"log"

	"car-rental-backend/config"

	"github.com/spf13/cobra"
)

func MigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if _, err := openDB(cfg); err != nil {
				return err
			}
			log.Printf("schema for %s is up to date", cfg.DBDriver)
			return nil
		},
	}
}
