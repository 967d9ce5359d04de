package get_supplier_pricing

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-RentalService/internal/service/suppliers"
	"github.com/m04kA/SMC-RentalService/internal/service/suppliers/models"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
)

type serviceMock struct {
	mock.Mock
}

func (m *serviceMock) GetPricing(ctx context.Context, supplierID int64) (*models.PricingResponse, error) {
	args := m.Called(ctx, supplierID)
	resp, _ := args.Get(0).(*models.PricingResponse)
	return resp, args.Error(1)
}

func get(h *Handler, supplierID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/suppliers/"+supplierID+"/pricing", nil)
	req = mux.SetURLVars(req, map[string]string{"supplierId": supplierID})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Handle(t *testing.T) {
	svc := &serviceMock{}
	svc.On("GetPricing", mock.Anything, int64(7)).Return(&models.PricingResponse{SupplierID: 7, FullName: "Acme"}, nil)
	svc.On("GetPricing", mock.Anything, int64(8)).Return(nil, suppliers.ErrSupplierNotFound)
	svc.On("GetPricing", mock.Anything, int64(9)).Return(nil, errors.New("boom"))
	h := NewHandler(svc, logger.NewWithWriter(&bytes.Buffer{}, "info"))

	rec := get(h, "7")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"fullName":"Acme"`)

	assert.Equal(t, http.StatusNotFound, get(h, "8").Code)
	assert.Equal(t, http.StatusInternalServerError, get(h, "9").Code)
	assert.Equal(t, http.StatusBadRequest, get(h, "-1").Code)
}
