package services

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	"car-rental-backend/models"
	"car-rental-backend/pricing"
	"car-rental-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingService owns the booking lifecycle: quote, availability check and
// persistence. Writes for one car are serialized so the overlap check and
// the insert cannot interleave with another write for that car.
type BookingService struct {
	DB    *gorm.DB
	locks *carLocks
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db, locks: newCarLocks()}
}

// BookingInput is a create or edit request. For edits, zero values keep
// the stored value. ClientTotalDays and ClientTotalAmount are what the
// caller believed the quote was; they are only compared, never stored.
type BookingInput struct {
	CarID             uint
	UserID            uint
	From              string
	To                string
	TransactionID     string
	ClientTotalDays   int
	ClientTotalAmount float64
}

func parseSlot(from, to string) (models.TimeSlot, error) {
	f, err := utils.ParseDate(from)
	if err != nil {
		return models.TimeSlot{}, fmt.Errorf("%w: pickup %v", ErrValidation, err)
	}
	t, err := utils.ParseDate(to)
	if err != nil {
		return models.TimeSlot{}, fmt.Errorf("%w: return %v", ErrValidation, err)
	}
	if !t.After(f) {
		return models.TimeSlot{}, fmt.Errorf("%w: return date must be after pickup date", ErrValidation)
	}
	return models.TimeSlot{From: f, To: t}, nil
}

func newTransactionID() string {
	return "TID-" + uuid.NewString()
}

// lockCar loads the car row under an update lock for the rest of tx.
func lockCar(tx *gorm.DB, carID uint) (*models.Car, error) {
	var car models.Car
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&car, carID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: car %d", ErrNotFound, carID)
		}
		return nil, fmt.Errorf("failed to load car %d: %w", carID, err)
	}
	return &car, nil
}

func ensureUserExists(tx *gorm.DB, userID uint) error {
	if userID == 0 {
		return fmt.Errorf("%w: user is required", ErrValidation)
	}
	var user models.User
	if err := tx.Select("id").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user %d", ErrNotFound, userID)
		}
		return fmt.Errorf("failed to load user %d: %w", userID, err)
	}
	return nil
}

// checkAvailability fails when slot overlaps a booking of carID other than exceptID.
func checkAvailability(tx *gorm.DB, carID uint, slot models.TimeSlot, exceptID uint) error {
	q := tx.Model(&models.Booking{}).
		Where("car_id = ? AND from_date < ? AND to_date > ?", carID, slot.To, slot.From)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	var conflicts int64
	if err := q.Count(&conflicts).Error; err != nil {
		return fmt.Errorf("failed to check existing bookings: %w", err)
	}
	if conflicts > 0 {
		return fmt.Errorf("%w: car %d is already booked between %s and %s", ErrSlotUnavailable,
			carID, slot.From.Format(models.DateLayout), slot.To.Format(models.DateLayout))
	}
	return nil
}

func logQuoteMismatch(in BookingInput, quote pricing.Quote) {
	if in.ClientTotalDays == 0 && in.ClientTotalAmount == 0 {
		return
	}
	if in.ClientTotalDays != quote.TotalDays || math.Abs(in.ClientTotalAmount-quote.TotalAmount) > 1e-9 {
		log.Printf("booking quote mismatch for car %d: client %d days/%.2f, server %d days/%.2f",
			in.CarID, in.ClientTotalDays, in.ClientTotalAmount, quote.TotalDays, quote.TotalAmount)
	}
}

// Quote prices a rental of carID without booking it.
func (s *BookingService) Quote(carID uint, from, to string) (pricing.Quote, error) {
	slot, err := parseSlot(from, to)
	if err != nil {
		return pricing.Quote{}, err
	}
	var car models.Car
	if err := s.DB.Select("id", "rent_per_hour").First(&car, carID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pricing.Quote{}, fmt.Errorf("%w: car %d", ErrNotFound, carID)
		}
		return pricing.Quote{}, fmt.Errorf("failed to load car: %w", err)
	}
	return pricing.Calculate(slot.From, slot.To, car.RentPerHour), nil
}

// Create books a car. Totals are computed here from the car's rate.
func (s *BookingService) Create(in BookingInput) (*models.Booking, error) {
	if in.CarID == 0 {
		return nil, fmt.Errorf("%w: car is required", ErrValidation)
	}
	slot, err := parseSlot(in.From, in.To)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(in.CarID)
	defer unlock()

	var booking models.Booking
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		car, err := lockCar(tx, in.CarID)
		if err != nil {
			return err
		}
		if err := ensureUserExists(tx, in.UserID); err != nil {
			return err
		}
		if err := checkAvailability(tx, car.ID, slot, 0); err != nil {
			return err
		}

		quote := pricing.Calculate(slot.From, slot.To, car.RentPerHour)
		logQuoteMismatch(in, quote)

		txID := strings.TrimSpace(in.TransactionID)
		if txID == "" {
			txID = newTransactionID()
		}
		booking = models.Booking{
			CarID:           car.ID,
			UserID:          in.UserID,
			BookedTimeSlots: slot,
			TotalDays:       quote.TotalDays,
			TotalAmount:     quote.TotalAmount,
			TransactionID:   txID,
		}
		if err := tx.Omit(clause.Associations).Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(booking.ID)
}

// Update edits a booking, re-pricing it and re-checking availability
// against every other booking of the target car.
func (s *BookingService) Update(id uint, in BookingInput) (*models.Booking, error) {
	current, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	carID := current.CarID
	if in.CarID != 0 {
		carID = in.CarID
	}
	userID := current.UserID
	if in.UserID != 0 {
		userID = in.UserID
	}
	from, to := in.From, in.To
	if strings.TrimSpace(from) == "" {
		from = current.BookedTimeSlots.From.Format(models.DateLayout)
	}
	if strings.TrimSpace(to) == "" {
		to = current.BookedTimeSlots.To.Format(models.DateLayout)
	}
	slot, err := parseSlot(from, to)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(current.CarID, carID)
	defer unlock()

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Booking
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: booking %d", ErrNotFound, id)
			}
			return err
		}
		if existing.CarID != current.CarID {
			return fmt.Errorf("%w: booking %d was moved to another car, retry the edit", ErrValidation, id)
		}
		car, err := lockCar(tx, carID)
		if err != nil {
			return err
		}
		if err := ensureUserExists(tx, userID); err != nil {
			return err
		}
		if err := checkAvailability(tx, car.ID, slot, id); err != nil {
			return err
		}

		quote := pricing.Calculate(slot.From, slot.To, car.RentPerHour)
		logQuoteMismatch(in, quote)

		fields := map[string]interface{}{
			"car_id":       car.ID,
			"user_id":      userID,
			"from_date":    slot.From,
			"to_date":      slot.To,
			"total_days":   quote.TotalDays,
			"total_amount": quote.TotalAmount,
		}
		if txID := strings.TrimSpace(in.TransactionID); txID != "" {
			fields["transaction_id"] = txID
		}
		return tx.Model(&models.Booking{}).Where("id = ?", id).Updates(fields).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Delete removes a booking; its range leaves the car's ledger with it.
// Unknown ids are a no-op.
func (s *BookingService) Delete(id uint) error {
	if err := s.DB.Delete(&models.Booking{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return nil
}

func withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Car").
		Preload("Car.Bookings", bookingsByPickup).
		Preload("User")
}

func fillBookingLedgers(bookings []models.Booking) {
	for i := range bookings {
		if bookings[i].Car != nil {
			bookings[i].Car.FillLedger()
		}
	}
}

func (s *BookingService) GetByID(id uint) (*models.Booking, error) {
	var bk models.Booking
	if err := withRelations(s.DB).First(&bk, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: booking %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to retrieve booking: %w", err)
	}
	if bk.Car != nil {
		bk.Car.FillLedger()
	}
	return &bk, nil
}

// GetAllWithRelations returns every booking with car and user resolved.
func (s *BookingService) GetAllWithRelations() ([]models.Booking, error) {
	var list []models.Booking
	if err := withRelations(s.DB).Order("created_at DESC").Order("id DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	fillBookingLedgers(list)
	return list, nil
}
