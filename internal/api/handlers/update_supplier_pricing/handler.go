package update_supplier_pricing

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RentalService/internal/api/handlers"
	"github.com/m04kA/SMC-RentalService/internal/service/suppliers"
)

const (
	msgInvalidSupplierID  = "некорректный ID поставщика"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "поставщик не найден"
	msgInvalidData        = "некорректные ценовые настройки поставщика"
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

// Handle PUT /api/v1/admin/suppliers/{supplierId}/pricing
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	supplierID, err := strconv.ParseInt(mux.Vars(r)["supplierId"], 10, 64)
	if err != nil || supplierID <= 0 {
		h.logger.Warn("PUT /admin/suppliers/{id}/pricing - Invalid supplier ID: %s", mux.Vars(r)["supplierId"])
		handlers.RespondBadRequest(w, msgInvalidSupplierID)
		return
	}

	var req UpdatePricingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/suppliers/{id}/pricing - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdatePricing(r.Context(), req.ToServiceRequest(supplierID))
	if err != nil {
		switch {
		case errors.Is(err, suppliers.ErrSupplierNotFound):
			h.logger.Warn("PUT /admin/suppliers/{id}/pricing - Supplier not found: supplier_id=%d", supplierID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, suppliers.ErrInvalidInput):
			h.logger.Warn("PUT /admin/suppliers/{id}/pricing - Invalid data: supplier_id=%d, error=%v", supplierID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /admin/suppliers/{id}/pricing - Failed to update pricing: supplier_id=%d, error=%v",
				supplierID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/suppliers/{id}/pricing - Pricing updated: supplier_id=%d", supplierID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
