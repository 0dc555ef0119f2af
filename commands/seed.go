package commands

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"car-rental-backend/config"
	"car-rental-backend/services"

	"github.com/spf13/cobra"
)

func readCatalog(path string) ([]services.CatalogCar, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalogue: %w", err)
	}
	var entries []services.CatalogCar
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse catalogue %s: %w", path, err)
	}
	return entries, nil
}

// SeedCmd imports the car catalogue. By default it replaces every car (and
// so every booking); --keep appends instead.
func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Import cars from a catalogue JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			keep, _ := cmd.Flags().GetBool("keep")

			entries, err := readCatalog(file)
			if err != nil {
				return err
			}

			cfg := config.Load()
			db, err := openDB(cfg)
			if err != nil {
				return err
			}

			n, err := services.NewCarService(db).ImportCatalog(entries, !keep)
			if err != nil {
				return err
			}
			log.Printf("imported %d cars from %s", n, file)
			return nil
		},
	}
	cmd.Flags().String("file", "data/cars.json", "catalogue file")
	cmd.Flags().Bool("keep", false, "keep existing cars and bookings")
	return cmd
}
