package search_suppliers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	searchSuppliers "github.com/m04kA/SMC-RentalService/internal/usecase/search_suppliers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidLocation    = "не указана или некорректна точка выдачи"
)

type Handler struct {
	useCase SearchSuppliersUseCase
	logger  Logger
}

func NewHandler(useCase SearchSuppliersUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/suppliers/search
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var query domain.FilterQuery
	if err := handlers.DecodeJSON(r, &query); err != nil {
		h.logger.Warn("POST /suppliers/search - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &searchSuppliers.Request{Query: query})
	if err != nil {
		if errors.Is(err, searchSuppliers.ErrInvalidLocation) {
			h.logger.Warn("POST /suppliers/search - Invalid location: %v", query.PickupLocation)
			handlers.RespondBadRequest(w, msgInvalidLocation)
			return
		}
		h.logger.Error("POST /suppliers/search - Failed to search suppliers: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /suppliers/search - Search done: suppliers=%d", len(result.Suppliers))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
