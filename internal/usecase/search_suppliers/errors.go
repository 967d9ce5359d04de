package search_suppliers

import "errors"

var (
	// ErrInvalidLocation возвращается, когда точка выдачи не указана или некорректна
	ErrInvalidLocation = errors.New("search_suppliers: invalid pickup location")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("search_suppliers: internal error")
)
