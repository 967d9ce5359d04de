package update_supplier_pricing

import "github.com/m04kA/SMC-RentalService/internal/service/suppliers/models"

// UpdatePricingRequest HTTP request model
// Настройки заменяются целиком: отсутствие minimumRentalDays снимает ограничение
type UpdatePricingRequest struct {
	PriceChangeRate   float64 `json:"priceChangeRate"`
	MinimumRentalDays *int    `json:"minimumRentalDays"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdatePricingRequest) ToServiceRequest(supplierID int64) *models.UpdatePricingRequest {
	return &models.UpdatePricingRequest{
		SupplierID:        supplierID,
		PriceChangeRate:   r.PriceChangeRate,
		MinimumRentalDays: r.MinimumRentalDays,
	}
}
