package car

import (
	"context"

	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// TxManager выполняет чтение каталога в одной read-only транзакции
type TxManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}
