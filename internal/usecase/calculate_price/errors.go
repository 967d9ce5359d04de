package calculate_price

import "errors"

var (
	// ErrCarNotFound возвращается, когда автомобиль не найден
	ErrCarNotFound = errors.New("calculate_price: car not found")

	// ErrInvalidInterval возвращается, когда период аренды задан некорректно
	ErrInvalidInterval = errors.New("calculate_price: invalid rental interval")

	// ErrRentalTooShort возвращается, когда срок аренды меньше минимального у поставщика
	ErrRentalTooShort = errors.New("calculate_price: rental is shorter than supplier minimum")

	// ErrIncompleteTariff возвращается, когда у автомобиля нет подходящего тарифа
	ErrIncompleteTariff = errors.New("calculate_price: car tariff is incomplete")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("calculate_price: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("calculate_price: internal error")
)
