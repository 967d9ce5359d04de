package eligibility

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// SupplierGroup is one supplier with the number of its matching cars
type SupplierGroup struct {
	SupplierID int64
	FullName   string
	Avatar     *string
	CarCount   int
}

// GroupBySupplier filters the catalog and counts matches per supplier,
// sorted by supplier name (English collation, case-insensitive)
func GroupBySupplier(catalog []*domain.Car, query domain.FilterQuery, mode Mode) ([]SupplierGroup, error) {
	return GroupBySupplierLocale(catalog, query, mode, language.English)
}

// GroupBySupplierLocale is GroupBySupplier with the collation language given explicitly
func GroupBySupplierLocale(catalog []*domain.Car, query domain.FilterQuery, mode Mode, tag language.Tag) ([]SupplierGroup, error) {
	cars, err := FilterCars(catalog, query, mode)
	if err != nil {
		return nil, err
	}

	groups := CountBySupplier(cars)
	SortSupplierGroups(groups, tag)
	return groups, nil
}

// CountBySupplier groups cars by supplier keeping the first-seen name and avatar.
// Output follows first appearance order.
func CountBySupplier(cars []*domain.Car) []SupplierGroup {
	groups := make([]SupplierGroup, 0)
	index := make(map[int64]int)

	for _, car := range cars {
		if i, ok := index[car.Supplier.ID]; ok {
			groups[i].CarCount++
			continue
		}
		index[car.Supplier.ID] = len(groups)
		groups = append(groups, SupplierGroup{
			SupplierID: car.Supplier.ID,
			FullName:   car.Supplier.FullName,
			Avatar:     car.Supplier.Avatar,
			CarCount:   1,
		})
	}

	return groups
}

// SortSupplierGroups sorts groups by name with a case-insensitive collator, ties by supplier ID
func SortSupplierGroups(groups []SupplierGroup, tag language.Tag) {
	// collator is not safe for concurrent use, one per call
	c := collate.New(tag, collate.IgnoreCase)

	sort.SliceStable(groups, func(i, j int) bool {
		if cmp := c.CompareString(groups[i].FullName, groups[j].FullName); cmp != 0 {
			return cmp < 0
		}
		return groups[i].SupplierID < groups[j].SupplierID
	})
}
