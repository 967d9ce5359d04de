package domain

import (
	"fmt"
	"sort"
	"strings"
)

// CarSpecs boolean equipment filters
type CarSpecs struct {
	Aircon            bool `json:"aircon,omitempty"`
	MoreThanFourDoors bool `json:"moreThanFourDoors,omitempty"`
	MoreThanFiveSeats bool `json:"moreThanFiveSeats,omitempty"`
}

// FilterQuery is a multi-criteria car search.
// A nil field means "no constraint". For Mileage, Availability and Suppliers
// an empty non-nil slice means "match nothing".
type FilterQuery struct {
	PickupLocation *int64    `json:"pickupLocation,omitempty"`
	CarType        []string  `json:"carType,omitempty"`
	Gearbox        []string  `json:"gearbox,omitempty"`
	Mileage        []string  `json:"mileage"`
	FuelPolicy     []string  `json:"fuelPolicy,omitempty"`
	Deposit        *float64  `json:"deposit,omitempty"`
	CarSpecs       *CarSpecs `json:"carSpecs,omitempty"`
	Ranges         []string  `json:"ranges,omitempty"`
	Multimedia     []string  `json:"multimedia,omitempty"`
	Rating         *float64  `json:"rating,omitempty"`
	Seats          *int      `json:"seats,omitempty"`
	Availability   []string  `json:"availability"`
	Days           *int      `json:"days,omitempty"`
	Suppliers      []int64   `json:"suppliers"`
	Keyword        string    `json:"keyword,omitempty"`
}

// CatalogFilter narrows what is loaded from storage before the
// eligibility filter runs. It never replaces the filter itself.
type CatalogFilter struct {
	SupplierIDs   []int64
	LocationID    *int64
	OnlyAvailable bool
}

// Key returns a stable string identifying the filter, used for caching
func (f CatalogFilter) Key() string {
	ids := make([]int64, len(f.SupplierIDs))
	copy(ids, f.SupplierIDs)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}

	location := "any"
	if f.LocationID != nil {
		location = fmt.Sprint(*f.LocationID)
	}

	return fmt.Sprintf("suppliers=%s;location=%s;available=%t", strings.Join(parts, ","), location, f.OnlyAvailable)
}
