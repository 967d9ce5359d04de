package calculate_price

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	calculatePrice "github.com/m04kA/SMC-RentalService/internal/usecase/calculate_price"
)

const (
	msgInvalidCarID       = "некорректный ID автомобиля"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается RFC3339 или YYYY-MM-DD"
	msgInvalidInterval    = "дата возврата должна быть позже даты получения"
	msgRentalTooShort     = "срок аренды меньше минимального у поставщика"
	msgCarNotFound        = "автомобиль не найден"
	msgIncompleteTariff   = "для автомобиля нет тарифа на выбранные даты"
)

type Handler struct {
	useCase CalculatePriceUseCase
	logger  Logger
}

func NewHandler(useCase CalculatePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/cars/{carId}/price
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	carID, err := strconv.ParseInt(mux.Vars(r)["carId"], 10, 64)
	if err != nil || carID <= 0 {
		h.logger.Warn("POST /cars/{id}/price - Invalid car ID: %s", mux.Vars(r)["carId"])
		handlers.RespondBadRequest(w, msgInvalidCarID)
		return
	}

	var req CalculatePriceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cars/{id}/price - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(carID)
	if err != nil {
		h.logger.Warn("POST /cars/{id}/price - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, calculatePrice.ErrInvalidInterval):
			h.logger.Warn("POST /cars/{id}/price - Invalid interval: car_id=%d", carID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, calculatePrice.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidCarID)

		case errors.Is(err, calculatePrice.ErrRentalTooShort):
			h.logger.Warn("POST /cars/{id}/price - Rental too short: car_id=%d", carID)
			handlers.RespondBadRequest(w, msgRentalTooShort)

		case errors.Is(err, calculatePrice.ErrCarNotFound):
			h.logger.Warn("POST /cars/{id}/price - Car not found: car_id=%d", carID)
			handlers.RespondNotFound(w, msgCarNotFound)

		case errors.Is(err, calculatePrice.ErrIncompleteTariff):
			h.logger.Warn("POST /cars/{id}/price - Incomplete tariff: car_id=%d", carID)
			handlers.RespondUnprocessable(w, msgIncompleteTariff)

		default:
			h.logger.Error("POST /cars/{id}/price - Failed to calculate price: car_id=%d, error=%v", carID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cars/{id}/price - Price calculated: car_id=%d, total=%.2f", carID, result.TotalPrice)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
