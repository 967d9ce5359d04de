package domain

import (
	"math"
	"time"
)

// Day length used to count rental days
const Day = 24 * time.Hour

// RentalInterval is the pickup and drop-off time of a rental
type RentalInterval struct {
	From time.Time
	To   time.Time
}

// HasDates returns true if both ends of the interval are set
func (i RentalInterval) HasDates() bool {
	return !i.From.IsZero() && !i.To.IsZero()
}

// IsOrdered returns true if From is strictly before To
func (i RentalInterval) IsOrdered() bool {
	return i.From.Before(i.To)
}

// Days returns the number of started 24h periods, at least 1.
// Returns 0 when either date is missing.
func (i RentalInterval) Days() int {
	if !i.HasDates() {
		return 0
	}
	days := int(math.Ceil(float64(i.To.Sub(i.From)) / float64(Day)))
	if days < 1 {
		return 1
	}
	return days
}
