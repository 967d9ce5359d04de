package pricing

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInterval возвращается, когда даты аренды отсутствуют или from >= to
	ErrInvalidInterval = errors.New("pricing: invalid rental interval")

	// ErrIncompleteTariff возвращается, когда у автомобиля не хватает данных для расчета цены
	ErrIncompleteTariff = errors.New("pricing: incomplete tariff")

	// ErrNoTariffMatch возвращается, когда ни один тариф по датам не покрывает начало аренды
	ErrNoTariffMatch = fmt.Errorf("%w: no date-based tariff covers the rental start", ErrIncompleteTariff)
)
