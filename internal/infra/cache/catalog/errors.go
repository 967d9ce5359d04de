package catalog

import "errors"

var (
	// ErrInvalidate возвращается, когда не удалось сбросить кэш каталога
	ErrInvalidate = errors.New("catalog.cache: failed to invalidate")
)
