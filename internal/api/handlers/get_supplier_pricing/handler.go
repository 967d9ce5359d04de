package get_supplier_pricing

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/suppliers"
)

const (
	msgInvalidSupplierID = "некорректный ID поставщика"
	msgNotFound          = "поставщик не найден"
)

type Handler struct {
	service SupplierService
	logger  Logger
}

func NewHandler(service SupplierService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/suppliers/{supplierId}/pricing
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	supplierID, err := strconv.ParseInt(mux.Vars(r)["supplierId"], 10, 64)
	if err != nil || supplierID <= 0 {
		h.logger.Warn("GET /admin/suppliers/{id}/pricing - Invalid supplier ID: %s", mux.Vars(r)["supplierId"])
		handlers.RespondBadRequest(w, msgInvalidSupplierID)
		return
	}

	result, err := h.service.GetPricing(r.Context(), supplierID)
	if err != nil {
		switch {
		case errors.Is(err, suppliers.ErrSupplierNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, suppliers.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidSupplierID)

		default:
			h.logger.Error("GET /admin/suppliers/{id}/pricing - Failed to get pricing: supplier_id=%d, error=%v",
				supplierID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
