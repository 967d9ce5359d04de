package update_supplier_pricing

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/suppliers/models"
)

type SupplierService interface {
	UpdatePricing(ctx context.Context, req *models.UpdatePricingRequest) (*models.PricingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
