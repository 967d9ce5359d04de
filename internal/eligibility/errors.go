package eligibility

import "errors"

var (
	// ErrInvalidLocation возвращается, когда место получения не указано или некорректно
	ErrInvalidLocation = errors.New("eligibility: invalid pickup location")
)
