package search_cars

import (
	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/eligibility"
)

// Request модель запроса на поиск автомобилей
type Request struct {
	Query domain.FilterQuery
	Mode  eligibility.Mode // Frontend для клиентов, Backend для админки
	Page  int              // Номер страницы, с 1 (0 - по умолчанию)
	Size  int              // Размер страницы (0 - по умолчанию)
}

// Response модель ответа со страницей найденных автомобилей
type Response struct {
	Cars  []*domain.Car
	Total int // Всего найдено
	Page  int
	Size  int
}
