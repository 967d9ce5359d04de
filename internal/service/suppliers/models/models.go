package models

import "github.com/m04kA/SMC-RentalService/internal/domain"

// UpdatePricingRequest запрос на замену ценовых настроек поставщика
type UpdatePricingRequest struct {
	SupplierID        int64   `json:"supplierId"`
	PriceChangeRate   float64 `json:"priceChangeRate"`   // от -100 до 1000 процентов
	MinimumRentalDays *int    `json:"minimumRentalDays"` // nil = без ограничения
}

// ToDomainSettings преобразует запрос в доменные настройки
func (r *UpdatePricingRequest) ToDomainSettings() domain.PricingSettings {
	return domain.PricingSettings{
		PriceChangeRate:   r.PriceChangeRate,
		MinimumRentalDays: r.MinimumRentalDays,
	}
}

// PricingResponse ценовые настройки поставщика
type PricingResponse struct {
	SupplierID        int64   `json:"supplierId"`
	FullName          string  `json:"fullName"`
	PriceChangeRate   float64 `json:"priceChangeRate"`
	MinimumRentalDays *int    `json:"minimumRentalDays"`
}

// FromDomainSupplier создает ответ из доменной модели
func FromDomainSupplier(s *domain.Supplier) *PricingResponse {
	return &PricingResponse{
		SupplierID:        s.ID,
		FullName:          s.FullName,
		PriceChangeRate:   s.PriceChangeRate,
		MinimumRentalDays: s.MinimumRentalDays,
	}
}
