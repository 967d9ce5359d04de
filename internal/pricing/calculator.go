package pricing

import (
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Quote разбивка итоговой стоимости аренды
type Quote struct {
	Days       int
	Base       float64
	Options    float64
	Adjustment float64 // наценка или скидка поставщика
	Total      float64
	Tier       *domain.DateBasedPrice // тариф по датам, если применялся
}

// Calculate считает стоимость аренды с разбивкой.
// priceChangeRate - процент, который поставщик применяет к базовой стоимости (может быть отрицательным).
// Результат не округляется.
func Calculate(
	car *domain.Car,
	interval domain.RentalInterval,
	priceChangeRate float64,
	selection domain.CarOptions,
) (Quote, error) {
	if err := ValidateInterval(interval); err != nil {
		return Quote{}, err
	}

	base, tier, err := resolveTariff(car, interval)
	if err != nil {
		return Quote{}, err
	}

	days := interval.Days()
	options := PriceOptions(car, selection, days)

	adjustment := 0.0
	if priceChangeRate != 0 {
		adjustment = base * (priceChangeRate / 100)
	}

	return Quote{
		Days:       days,
		Base:       base,
		Options:    options,
		Adjustment: adjustment,
		Total:      base + options + adjustment,
		Tier:       tier,
	}, nil
}

// CalculateTotalPrice возвращает итоговую стоимость аренды
func CalculateTotalPrice(
	car *domain.Car,
	interval domain.RentalInterval,
	priceChangeRate float64,
	selection domain.CarOptions,
) (float64, error) {
	quote, err := Calculate(car, interval, priceChangeRate, selection)
	if err != nil {
		return 0, err
	}
	return quote.Total, nil
}

// ValidateInterval проверяет, что обе даты заданы и from < to
func ValidateInterval(interval domain.RentalInterval) error {
	if !interval.HasDates() {
		return fmt.Errorf("%w: both dates are required", ErrInvalidInterval)
	}
	if !interval.IsOrdered() {
		return fmt.Errorf("%w: from must be before to", ErrInvalidInterval)
	}
	return nil
}
