package search_cars

import "errors"

var (
	// ErrInvalidLocation возвращается, когда точка выдачи не указана или некорректна
	ErrInvalidLocation = errors.New("search_cars: invalid pickup location")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("search_cars: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("search_cars: internal error")
)
