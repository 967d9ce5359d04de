package eligibility

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Matcher is a compiled FilterQuery
type Matcher struct {
	query        domain.FilterQuery
	mode         Mode
	mileage      Selection
	availability Selection
	keyword      string
}

// Compile validates the query for the mode and derives the selections once
func Compile(query domain.FilterQuery, mode Mode) (*Matcher, error) {
	if err := validateLocation(query.PickupLocation, mode); err != nil {
		return nil, err
	}

	m := &Matcher{
		query:        query,
		mode:         mode,
		mileage:      ParseSelection(query.Mileage, domain.MileageLimited, domain.MileageUnlimited),
		availability: SelectAny,
		keyword:      strings.ToLower(strings.TrimSpace(query.Keyword)),
	}
	if mode == ModeBackend {
		m.availability = ParseSelection(query.Availability, domain.AvailabilityAvailable, domain.AvailabilityUnavailable)
	}

	return m, nil
}

// MatchesNothing returns true if the query can never match a car
func (m *Matcher) MatchesNothing() bool {
	return m.mileage == SelectNone ||
		m.availability == SelectNone ||
		(m.query.Suppliers != nil && len(m.query.Suppliers) == 0)
}

// Match returns true if the car satisfies every supplied predicate
func (m *Matcher) Match(car *domain.Car) bool {
	q := m.query

	if q.PickupLocation != nil && !car.AvailableAt(*q.PickupLocation) {
		return false
	}
	if q.Suppliers != nil && !lo.Contains(q.Suppliers, car.Supplier.ID) {
		return false
	}
	if !inSet(q.CarType, car.Type) || !inSet(q.Gearbox, car.Gearbox) ||
		!inSet(q.FuelPolicy, car.FuelPolicy) || !inSet(q.Ranges, car.Range) {
		return false
	}
	if !m.mileage.Allows(!car.HasUnlimitedMileage()) {
		return false
	}
	if !m.availability.Allows(car.Available) {
		return false
	}
	if q.Deposit != nil && *q.Deposit > domain.NoConstraint && car.Deposit > *q.Deposit {
		return false
	}
	if !matchSpecs(q.CarSpecs, car) {
		return false
	}
	if len(q.Multimedia) > 0 && !lo.Every(car.Multimedia, q.Multimedia) {
		return false
	}
	if q.Rating != nil && *q.Rating > domain.NoConstraint {
		if car.Rating == nil || *car.Rating < *q.Rating {
			return false
		}
	}
	if q.Seats != nil && !matchSeats(*q.Seats, car.Seats) {
		return false
	}
	if m.mode == ModeFrontend && q.Days != nil && !car.Supplier.AcceptsRentalDays(*q.Days) {
		return false
	}
	if m.keyword != "" && !strings.Contains(strings.ToLower(car.Name), m.keyword) {
		return false
	}

	return true
}

// FilterCars returns the cars of the catalog matching the query, in catalog order
func FilterCars(catalog []*domain.Car, query domain.FilterQuery, mode Mode) ([]*domain.Car, error) {
	m, err := Compile(query, mode)
	if err != nil {
		return nil, err
	}
	return m.Filter(catalog), nil
}

// Filter applies the compiled query to the catalog
func (m *Matcher) Filter(catalog []*domain.Car) []*domain.Car {
	if m.MatchesNothing() {
		return []*domain.Car{}
	}
	return lo.Filter(catalog, func(car *domain.Car, _ int) bool {
		return car != nil && m.Match(car)
	})
}

func validateLocation(location *int64, mode Mode) error {
	if location == nil {
		if mode == ModeFrontend {
			return fmt.Errorf("%w: pickup location is required", ErrInvalidLocation)
		}
		return nil
	}
	if *location <= 0 {
		return fmt.Errorf("%w: id=%d", ErrInvalidLocation, *location)
	}
	return nil
}

// inSet returns true when no set was supplied or the value is in it
func inSet(set []string, value string) bool {
	return set == nil || lo.Contains(set, value)
}

func matchSpecs(specs *domain.CarSpecs, car *domain.Car) bool {
	if specs == nil {
		return true
	}
	if specs.Aircon && !car.Aircon {
		return false
	}
	if specs.MoreThanFourDoors && car.Doors <= 4 {
		return false
	}
	if specs.MoreThanFiveSeats && car.Seats <= 5 {
		return false
	}
	return true
}

// matchSeats treats 6 as "5 or more", any other value as an exact count
func matchSeats(seats int, carSeats int) bool {
	switch {
	case seats <= domain.NoConstraint:
		return true
	case seats == domain.SeatsFiveOrMoreFilter:
		return carSeats >= domain.SeatsFiveOrMore
	default:
		return carSeats == seats
	}
}
