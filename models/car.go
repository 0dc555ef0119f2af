package models

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

type Car struct {
	ID       uint   `gorm:"primaryKey" json:"_id"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Image    string `gorm:"size:512" json:"image"`
	Capacity int    `json:"capacity"`
	FuelType string `gorm:"column:fuel_type;size:64" json:"fuelType"`

	// RentPerHour is the daily rate.
	RentPerHour float64 `gorm:"column:rent_per_hour;not null;default:0" json:"rentPerHour"`

	Specs datatypes.JSON `gorm:"column:specs" json:"specs,omitempty"`

	// BookedTimeSlots is filled from Bookings after a load; it has no column.
	BookedTimeSlots []TimeSlot `gorm:"-" json:"bookedTimeSlots"`
	Bookings        []Booking  `gorm:"foreignKey:CarID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Brand is the first word of the display name ("Toyota Camry" -> "Toyota").
func (c Car) Brand() string {
	brand, _, _ := strings.Cut(strings.TrimSpace(c.Name), " ")
	return brand
}

// FillLedger replaces BookedTimeSlots with the view derived from Bookings.
func (c *Car) FillLedger() {
	c.BookedTimeSlots = LedgerFrom(c.Bookings)
}
