package search_suppliers

import (
	"context"

	searchSuppliers "github.com/m04kA/SMC-RentalService/internal/usecase/search_suppliers"
)

type SearchSuppliersUseCase interface {
	Execute(ctx context.Context, req *searchSuppliers.Request) (*searchSuppliers.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
