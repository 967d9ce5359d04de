package search_cars

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/eligibility"
	searchCars "github.com/m04kA/SMC-RentalService/internal/usecase/search_cars"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidLocation    = "не указана или некорректна точка выдачи"
	msgInvalidPagination  = "некорректные параметры пагинации"
)

// Handler поиск автомобилей
// Один и тот же обработчик обслуживает клиентский и админский поиск, отличается режим
type Handler struct {
	useCase SearchCarsUseCase
	mode    eligibility.Mode
	logger  Logger
}

func NewHandler(useCase SearchCarsUseCase, mode eligibility.Mode, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		mode:    mode,
		logger:  logger,
	}
}

// Handle POST /api/v1/cars/search, POST /api/v1/admin/cars/search
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SearchCarsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST %s - Invalid request body: %v", r.URL.Path, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(h.mode))
	if err != nil {
		switch {
		case errors.Is(err, searchCars.ErrInvalidLocation):
			h.logger.Warn("POST %s - Invalid location: %v", r.URL.Path, req.PickupLocation)
			handlers.RespondBadRequest(w, msgInvalidLocation)

		case errors.Is(err, searchCars.ErrInvalidInput):
			h.logger.Warn("POST %s - Invalid pagination: page=%d, size=%d", r.URL.Path, req.Page, req.Size)
			handlers.RespondBadRequest(w, msgInvalidPagination)

		default:
			h.logger.Error("POST %s - Failed to search cars: mode=%s, error=%v", r.URL.Path, h.mode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST %s - Search done: mode=%s, total=%d", r.URL.Path, h.mode, result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
