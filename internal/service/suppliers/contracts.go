package suppliers

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// SupplierRepository интерфейс репозитория поставщиков
type SupplierRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Supplier, error)
	UpdatePricing(ctx context.Context, id int64, settings domain.PricingSettings) error
}

// TransactionManager выполняет функцию в транзакции
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// CatalogInvalidator сбрасывает закэшированный каталог
type CatalogInvalidator interface {
	Invalidate(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
