package pricing

import "github.com/m04kA/SMC-RentalService/internal/domain"

// chargeMode how a surcharge scales with the rental length
type chargeMode int

const (
	chargeOnce chargeMode = iota
	chargePerDay
)

type optionLine struct {
	option    domain.Option
	requested bool
	mode      chargeMode
}

// PriceOptions возвращает стоимость выбранных опций.
// Отмена и изменение бронирования оплачиваются один раз,
// защита от угона, CDW, полная страховка и доп. водитель - за каждый день.
// Недоступные опции игнорируются, даже если они запрошены.
func PriceOptions(car *domain.Car, selection domain.CarOptions, days int) float64 {
	lines := []optionLine{
		{car.Cancellation, selection.Cancellation, chargeOnce},
		{car.Amendments, selection.Amendments, chargeOnce},
		{car.TheftProtection, selection.TheftProtection, chargePerDay},
		{car.CollisionDamageWaiver, selection.CollisionDamageWaiver, chargePerDay},
		{car.FullInsurance, selection.FullInsurance, chargePerDay},
		{car.AdditionalDriver, selection.AdditionalDriver, chargePerDay},
	}

	total := 0.0
	for _, line := range lines {
		total += line.price(days)
	}
	return total
}

func (l optionLine) price(days int) float64 {
	if !l.requested || !l.option.IsAvailable() {
		return 0
	}

	if l.option.Kind != domain.OptionSurcharge || l.option.Amount <= 0 {
		return 0
	}
	if l.mode == chargePerDay {
		return l.option.Amount * float64(days)
	}
	return l.option.Amount
}
