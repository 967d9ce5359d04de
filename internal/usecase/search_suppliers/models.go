package search_suppliers

import (
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/eligibility"
)

// Request модель запроса на поиск поставщиков
type Request struct {
	Query domain.FilterQuery
}

// Response модель ответа со списком поставщиков, у которых есть подходящие машины
type Response struct {
	Suppliers []eligibility.SupplierGroup
}
