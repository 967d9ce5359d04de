package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRentalInterval_Days(t *testing.T) {
	from := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		interval RentalInterval
		expected int
	}{
		{name: "exact days", interval: RentalInterval{From: from, To: from.Add(3 * Day)}, expected: 3},
		{name: "started day counts", interval: RentalInterval{From: from, To: from.Add(2*Day + time.Minute)}, expected: 3},
		{name: "less than a day", interval: RentalInterval{From: from, To: from.Add(2 * time.Hour)}, expected: 1},
		{name: "same instant", interval: RentalInterval{From: from, To: from}, expected: 1},
		{name: "missing to", interval: RentalInterval{From: from}, expected: 0},
		{name: "missing from", interval: RentalInterval{To: from}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.interval.Days())
		})
	}
}

func TestOptionFromCode(t *testing.T) {
	tests := []struct {
		code     float64
		expected Option
	}{
		{code: -1, expected: Unavailable()},
		{code: -7, expected: Unavailable()},
		{code: 0, expected: Included()},
		{code: 12.5, expected: Surcharge(12.5)},
	}

	for _, tt := range tests {
		t.Run(tt.expected.String(), func(t *testing.T) {
			option := OptionFromCode(tt.code)
			assert.Equal(t, tt.expected, option)
			assert.Equal(t, tt.code >= 0, option.IsAvailable())
		})
	}

	assert.Equal(t, float64(OptionCodeUnavailable), OptionFromCode(-7).Code())
	assert.Equal(t, 12.5, Surcharge(12.5).Code())
}

func TestOption_JSON(t *testing.T) {
	car := Car{ID: 1, Cancellation: Surcharge(20), Amendments: Included(), TheftProtection: Unavailable()}

	data, err := json.Marshal(car)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, 20.0, raw["cancellation"])
	assert.Equal(t, 0.0, raw["amendments"])
	assert.Equal(t, -1.0, raw["theftProtection"])

	var decoded Car
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, car.Cancellation, decoded.Cancellation)
	assert.Equal(t, car.TheftProtection, decoded.TheftProtection)
}

func TestSupplier_AcceptsRentalDays(t *testing.T) {
	three := 3
	withMinimum := Supplier{ID: 1, MinimumRentalDays: &three}

	assert.True(t, (&Supplier{ID: 2}).AcceptsRentalDays(1))
	assert.False(t, withMinimum.AcceptsRentalDays(2))
	assert.True(t, withMinimum.AcceptsRentalDays(3))
}

func TestDateBasedPrice_CoversInclusiveBounds(t *testing.T) {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	tier := DateBasedPrice{StartDate: start, EndDate: end, DailyPrice: 40}

	assert.True(t, tier.Covers(start))
	assert.True(t, tier.Covers(end))
	assert.False(t, tier.Covers(end.Add(time.Second)))
	assert.False(t, tier.Covers(start.Add(-time.Second)))
}

func TestDateBasedPrice_CoversComparesTimestamps(t *testing.T) {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	midnightEnd := DateBasedPrice{StartDate: start, EndDate: time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)}
	endOfDay := DateBasedPrice{StartDate: start, EndDate: time.Date(2025, time.January, 10, 23, 59, 59, 0, time.UTC)}

	pickup := time.Date(2025, time.January, 10, 10, 0, 0, 0, time.UTC)

	assert.False(t, midnightEnd.Covers(pickup))
	assert.True(t, endOfDay.Covers(pickup))
}

func TestCatalogFilter_Key(t *testing.T) {
	location := int64(4)
	a := CatalogFilter{SupplierIDs: []int64{3, 1, 2}, LocationID: &location, OnlyAvailable: true}
	b := CatalogFilter{SupplierIDs: []int64{1, 2, 3}, LocationID: &location, OnlyAvailable: true}

	assert.Equal(t, a.Key(), b.Key())
	assert.Equal(t, []int64{3, 1, 2}, a.SupplierIDs)
	assert.Equal(t, "suppliers=;location=any;available=false", CatalogFilter{}.Key())
	assert.NotEqual(t, a.Key(), CatalogFilter{SupplierIDs: []int64{1, 2, 3}}.Key())
}
