package search_suppliers

import (
	searchSuppliers "github.com/m04kA/SMC-RentalService/internal/usecase/search_suppliers"
)

// SupplierResponse поставщик и количество подходящих машин
type SupplierResponse struct {
	ID       int64   `json:"id"`
	FullName string  `json:"fullName"`
	Avatar   *string `json:"avatar,omitempty"`
	CarCount int     `json:"carCount"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *searchSuppliers.Response) []SupplierResponse {
	result := make([]SupplierResponse, 0, len(resp.Suppliers))
	for _, s := range resp.Suppliers {
		result = append(result, SupplierResponse{
			ID:       s.SupplierID,
			FullName: s.FullName,
			Avatar:   s.Avatar,
			CarCount: s.CarCount,
		})
	}
	return result
}
