package domain

import "time"

// UnlimitedMileage marks a car without a mileage cap
const UnlimitedMileage = -1

// Supplier represents the company that owns a car
type Supplier struct {
	ID                int64   `json:"id"`
	FullName          string  `json:"fullName"`
	Avatar            *string `json:"avatar,omitempty"`
	MinimumRentalDays *int    `json:"minimumRentalDays,omitempty"`
	PriceChangeRate   float64 `json:"priceChangeRate"` // percent applied on top of the base price
}

// AcceptsRentalDays returns true if a rental of the given length satisfies the supplier minimum
func (s *Supplier) AcceptsRentalDays(days int) bool {
	return s.MinimumRentalDays == nil || *s.MinimumRentalDays <= days
}

// DateBasedPrice is a daily rate valid for an inclusive date range
type DateBasedPrice struct {
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	DailyPrice float64   `json:"dailyPrice"`
}

// Covers returns true if t is within [StartDate, EndDate].
// Bounds are compared as timestamps: a tier meant to cover its whole last day
// must store EndDate as the end of that day.
func (p DateBasedPrice) Covers(t time.Time) bool {
	return !t.Before(p.StartDate) && !t.After(p.EndDate)
}

// Car represents a rentable car as seen by pricing and search
type Car struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Supplier Supplier `json:"supplier"`

	// Flat tariffs. Only DailyPrice takes part in the booking total,
	// the other periods are quoted for display.
	DailyPrice              *float64 `json:"dailyPrice,omitempty"`
	HourlyPrice             *float64 `json:"hourlyPrice,omitempty"`
	BiWeeklyPrice           *float64 `json:"biWeeklyPrice,omitempty"`
	WeeklyPrice             *float64 `json:"weeklyPrice,omitempty"`
	MonthlyPrice            *float64 `json:"monthlyPrice,omitempty"`
	DiscountedDailyPrice    *float64 `json:"discountedDailyPrice,omitempty"`
	DiscountedHourlyPrice   *float64 `json:"discountedHourlyPrice,omitempty"`
	DiscountedBiWeeklyPrice *float64 `json:"discountedBiWeeklyPrice,omitempty"`
	DiscountedWeeklyPrice   *float64 `json:"discountedWeeklyPrice,omitempty"`
	DiscountedMonthlyPrice  *float64 `json:"discountedMonthlyPrice,omitempty"`

	// Date-based tariffs, scanned in order
	IsDateBasedPrice bool             `json:"isDateBasedPrice"`
	DateBasedPrices  []DateBasedPrice `json:"dateBasedPrices,omitempty"`

	// Extras
	Cancellation          Option `json:"cancellation"`
	Amendments            Option `json:"amendments"`
	TheftProtection       Option `json:"theftProtection"`
	CollisionDamageWaiver Option `json:"collisionDamageWaiver"`
	FullInsurance         Option `json:"fullInsurance"`
	AdditionalDriver      Option `json:"additionalDriver"`

	// Mechanical attributes used by search
	Type       string   `json:"type"`
	Gearbox    string   `json:"gearbox"`
	FuelPolicy string   `json:"fuelPolicy"`
	Range      string   `json:"range"`
	Seats      int      `json:"seats"`
	Doors      int      `json:"doors"`
	Aircon     bool     `json:"aircon"`
	Mileage    int      `json:"mileage"` // UnlimitedMileage or km limit
	Multimedia []string `json:"multimedia,omitempty"`
	Rating     *float64 `json:"rating,omitempty"`
	Deposit    float64  `json:"deposit"`
	Available  bool     `json:"available"`
	Locations  []int64  `json:"locations,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasUnlimitedMileage returns true if the car has no mileage cap
func (c *Car) HasUnlimitedMileage() bool {
	return c.Mileage == UnlimitedMileage
}

// AvailableAt returns true if the car can be picked up at the location
func (c *Car) AvailableAt(locationID int64) bool {
	for _, id := range c.Locations {
		if id == locationID {
			return true
		}
	}
	return false
}
