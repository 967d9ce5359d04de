package pricing

import (
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// ResolveBasePrice возвращает базовую стоимость аренды без опций
func ResolveBasePrice(car *domain.Car, interval domain.RentalInterval) (float64, error) {
	base, _, err := resolveTariff(car, interval)
	return base, err
}

// resolveTariff считает базовую стоимость и возвращает тариф по датам, если он применялся.
//
// Для тарифов по датам берется первый диапазон из списка, в который попадает дата начала аренды.
// Пересечение диапазонов не проверяется: при пересечении побеждает объявленный раньше.
func resolveTariff(car *domain.Car, interval domain.RentalInterval) (float64, *domain.DateBasedPrice, error) {
	days := float64(interval.Days())

	if !car.IsDateBasedPrice {
		if car.DailyPrice == nil {
			return 0, nil, fmt.Errorf("%w: car id=%d has no daily price", ErrIncompleteTariff, car.ID)
		}
		return *car.DailyPrice * days, nil, nil
	}

	for i := range car.DateBasedPrices {
		tier := car.DateBasedPrices[i]
		if tier.Covers(interval.From) {
			return tier.DailyPrice * days, &tier, nil
		}
	}

	return 0, nil, fmt.Errorf("%w: car id=%d, from=%s", ErrNoTariffMatch, car.ID, interval.From.Format(domain.DateFormat))
}
