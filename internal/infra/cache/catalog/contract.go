package catalog

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// Provider источник каталога (репозиторий автомобилей)
type Provider interface {
	GetCatalog(ctx context.Context, filter domain.CatalogFilter) ([]*domain.Car, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
