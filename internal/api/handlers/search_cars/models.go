package search_cars

import (
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/eligibility"
	searchCars "github.com/m04kA/SMC-RentalService/internal/usecase/search_cars"
)

// SearchCarsRequest HTTP request model: поля фильтра и пагинация
type SearchCarsRequest struct {
	domain.FilterQuery
	Page int `json:"page,omitempty"`
	Size int `json:"size,omitempty"`
}

// SearchCarsResponse HTTP response model
type SearchCarsResponse struct {
	Cars  []*domain.Car `json:"cars"`
	Total int           `json:"total"`
	Page  int           `json:"page"`
	Size  int           `json:"size"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SearchCarsRequest) ToUseCaseRequest(mode eligibility.Mode) *searchCars.Request {
	return &searchCars.Request{
		Query: r.FilterQuery,
		Mode:  mode,
		Page:  r.Page,
		Size:  r.Size,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *searchCars.Response) *SearchCarsResponse {
	return &SearchCarsResponse{
		Cars:  resp.Cars,
		Total: resp.Total,
		Page:  resp.Page,
		Size:  resp.Size,
	}
}
