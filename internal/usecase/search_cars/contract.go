package search_cars

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// CatalogProvider источник каталога (кэш или репозиторий)
type CatalogProvider interface {
	GetCatalog(ctx context.Context, filter domain.CatalogFilter) ([]*domain.Car, error)
}

// Metrics интерфейс для учета поисков
type Metrics interface {
	ObserveSearch(mode string, matches int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
