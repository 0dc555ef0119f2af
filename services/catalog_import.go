package services

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"

	"car-rental-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CatalogSpec is one entry of a catalogue car's spec list, e.g. {"name":"Seats","value":5}.
type CatalogSpec struct {
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
	Icon  string      `json:"icon,omitempty"`
}

// CatalogCar is the shape of the front-end car catalogue used for seeding.
type CatalogCar struct {
	Brand string        `json:"brand"`
	Model string        `json:"model"`
	Image string        `json:"image"`
	Fuel  string        `json:"fuel"`
	Price float64       `json:"price"`
	Specs []CatalogSpec `json:"specs"`
}

// seats reads the "Seats" spec as an integer; missing or unparsable values are 0.
func (c CatalogCar) seats() int {
	for _, spec := range c.Specs {
		if !strings.EqualFold(strings.TrimSpace(spec.Name), "seats") {
			continue
		}
		switch v := spec.Value.(type) {
		case float64:
			return int(v)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err == nil {
				return n
			}
		}
	}
	return 0
}

// ToCar converts a catalogue entry to a Car with an empty ledger.
func (c CatalogCar) ToCar() (models.Car, error) {
	car := models.Car{
		Name:        strings.TrimSpace(c.Brand + " " + c.Model),
		Image:       c.Image,
		Capacity:    c.seats(),
		FuelType:    c.Fuel,
		RentPerHour: c.Price,
	}
	if len(c.Specs) > 0 {
		raw, err := json.Marshal(c.Specs)
		if err != nil {
			return models.Car{}, fmt.Errorf("failed to encode specs for %s: %w", car.Name, err)
		}
		car.Specs = datatypes.JSON(raw)
	}
	if err := validateCar(&car); err != nil {
		return models.Car{}, err
	}
	return car, nil
}

// ImportCatalog inserts the catalogue. With replace, existing cars and their
// bookings are removed first.
func (s *CarService) ImportCatalog(entries []CatalogCar, replace bool) (int, error) {
	cars := make([]models.Car, 0, len(entries))
	for i, entry := range entries {
		car, err := entry.ToCar()
		if err != nil {
			return 0, fmt.Errorf("catalogue entry %d: %w", i, err)
		}
		cars = append(cars, car)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if replace {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Booking{}).Error; err != nil {
				return err
			}
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Car{}).Error; err != nil {
				return err
			}
		}
		if len(cars) == 0 {
			return nil
		}
		return tx.Omit("Bookings").Create(&cars).Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to import catalogue: %w", err)
	}
	log.Printf("imported %d cars (replace=%t)", len(cars), replace)
	return len(cars), nil
}
