package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"_id"`

	CarID  uint  `gorm:"column:car_id;index;not null" json:"carId"`
	Car    *Car  `gorm:"foreignKey:CarID;references:ID" json:"car,omitempty"`
	UserID uint  `gorm:"column:user_id;index;not null" json:"userId"`
	User   *User `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`

	BookedTimeSlots TimeSlot `gorm:"embedded" json:"bookedTimeSlots"`

	TotalDays     int     `gorm:"column:total_days;not null" json:"totalDays"`
	TotalAmount   float64 `gorm:"column:total_amount;not null" json:"totalAmount"`
	TransactionID string  `gorm:"column:transaction_id;size:128" json:"transactionId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
