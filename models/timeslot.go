package models

import (
	"encoding/json"
	"sort"
	"time"
)

// DateLayout is the wire format of booked dates.
const DateLayout = "2006-01-02"

// TimeSlot is a half-open [From, To) rental range.
type TimeSlot struct {
	From time.Time `gorm:"column:from_date;not null;index" json:"from"`
	To   time.Time `gorm:"column:to_date;not null;index" json:"to"`
}

// Overlaps reports whether two ranges share at least one instant.
// A slot ending on the day another starts does not overlap it.
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	return s.From.Before(other.To) && other.From.Before(s.To)
}

func (s TimeSlot) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{
		"from": s.From.Format(DateLayout),
		"to":   s.To.Format(DateLayout),
	})
}

func parseSlotDate(raw string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

// UnmarshalJSON accepts dates as YYYY-MM-DD or RFC 3339 timestamps.
func (s *TimeSlot) UnmarshalJSON(b []byte) error {
	var raw struct {
		From string `json:"from"`
		To   string `json:"to"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	from, err := parseSlotDate(raw.From)
	if err != nil {
		return err
	}
	to, err := parseSlotDate(raw.To)
	if err != nil {
		return err
	}
	s.From, s.To = from.UTC(), to.UTC()
	return nil
}

// LedgerFrom derives a car's availability ledger from the bookings that
// reference it, ordered by pickup date.
func LedgerFrom(bookings []Booking) []TimeSlot {
	ledger := make([]TimeSlot, 0, len(bookings))
	for _, b := range bookings {
		ledger = append(ledger, b.BookedTimeSlots)
	}
	sort.SliceStable(ledger, func(i, j int) bool {
		return ledger[i].From.Before(ledger[j].From)
	})
	return ledger
}
