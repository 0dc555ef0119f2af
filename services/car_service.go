package services

import (
	"errors"
	"fmt"
	"strings"

	"car-rental-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CarService wraps *gorm.DB for the car catalogue and its ledgers.
type CarService struct {
	DB *gorm.DB
}

func NewCarService(db *gorm.DB) *CarService {
	return &CarService{DB: db}
}

// CarUpdate carries the fields an admin edit may change; nil means unchanged.
type CarUpdate struct {
	Name        *string
	Image       *string
	Capacity    *int
	FuelType    *string
	RentPerHour *float64
	Specs       []byte
}

func bookingsByPickup(db *gorm.DB) *gorm.DB {
	return db.Order("from_date ASC")
}

func validateCar(car *models.Car) error {
	car.Name = strings.TrimSpace(car.Name)
	if car.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if car.RentPerHour < 0 {
		return fmt.Errorf("%w: rentPerHour must not be negative", ErrValidation)
	}
	if car.Capacity < 0 {
		return fmt.Errorf("%w: capacity must not be negative", ErrValidation)
	}
	return nil
}

// List returns every car with its ledger, then applies filter in memory.
func (s *CarService) List(filter CarFilter) ([]models.Car, error) {
	var cars []models.Car
	if err := s.DB.Preload("Bookings", bookingsByPickup).Order("id ASC").Find(&cars).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve cars: %w", err)
	}
	for i := range cars {
		cars[i].FillLedger()
	}
	return filter.Apply(cars), nil
}

func (s *CarService) Get(id uint) (*models.Car, error) {
	var car models.Car
	if err := s.DB.Preload("Bookings", bookingsByPickup).First(&car, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: car %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to retrieve car: %w", err)
	}
	car.FillLedger()
	return &car, nil
}

// Create inserts a car. Any ledger sent by the client is ignored.
func (s *CarService) Create(car *models.Car) error {
	car.ID = 0
	car.Bookings = nil
	if err := validateCar(car); err != nil {
		return err
	}
	if err := s.DB.Omit("Bookings").Create(car).Error; err != nil {
		return fmt.Errorf("failed to create car: %w", err)
	}
	car.FillLedger()
	return nil
}

func (s *CarService) Update(id uint, upd CarUpdate) (*models.Car, error) {
	fields := map[string]interface{}{}
	if upd.Name != nil {
		name := strings.TrimSpace(*upd.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name is required", ErrValidation)
		}
		fields["name"] = name
	}
	if upd.Image != nil {
		fields["image"] = *upd.Image
	}
	if upd.Capacity != nil {
		if *upd.Capacity < 0 {
			return nil, fmt.Errorf("%w: capacity must not be negative", ErrValidation)
		}
		fields["capacity"] = *upd.Capacity
	}
	if upd.FuelType != nil {
		fields["fuel_type"] = *upd.FuelType
	}
	if upd.RentPerHour != nil {
		if *upd.RentPerHour < 0 {
			return nil, fmt.Errorf("%w: rentPerHour must not be negative", ErrValidation)
		}
		fields["rent_per_hour"] = *upd.RentPerHour
	}
	if upd.Specs != nil {
		fields["specs"] = datatypes.JSON(upd.Specs)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Car
		if err := tx.Select("id").First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: car %d", ErrNotFound, id)
			}
			return err
		}
		if len(fields) == 0 {
			return nil
		}
		return tx.Model(&models.Car{}).Where("id = ?", id).Updates(fields).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update car: %w", err)
	}
	return s.Get(id)
}

// Delete removes a car and the bookings referencing it. Unknown ids are a no-op.
func (s *CarService) Delete(id uint) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("car_id = ?", id).Delete(&models.Booking{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Car{}, id).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete car: %w", err)
	}
	return nil
}
