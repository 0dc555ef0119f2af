// Package pricing computes rental quotes. It is the only place totals are
// derived; the quote endpoint, booking creation and booking edits all call
// Calculate.
package pricing

import (
	"math"
	"time"
)

// Quote is the derived cost of a rental.
type Quote struct {
	TotalDays   int     `json:"totalDays"`
	TotalAmount float64 `json:"totalAmount"`
}

// Valid reports whether the quote covers at least one day.
func (q Quote) Valid() bool {
	return q.TotalDays > 0
}

// Calculate returns the quote for renting from pickup to ret at ratePerDay.
//
// Days are counted exclusive of the return date: a partial day rounds up,
// and 2024-01-01 -> 2024-01-04 is three days. A return that is not strictly
// after pickup yields the zero Quote.
func Calculate(pickup, ret time.Time, ratePerDay float64) Quote {
	if !ret.After(pickup) {
		return Quote{}
	}
	days := int(math.Ceil(ret.Sub(pickup).Hours() / 24))
	return Quote{
		TotalDays:   days,
		TotalAmount: float64(days) * ratePerDay,
	}
}
