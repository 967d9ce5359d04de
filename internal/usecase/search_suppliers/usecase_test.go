package search_suppliers

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
	"github.com/m04kA/SMC-RentalService/pkg/metrics"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

type catalogMock struct {
	mock.Mock
}

func (m *catalogMock) GetCatalog(ctx context.Context, filter domain.CatalogFilter) ([]*domain.Car, error) {
	args := m.Called(ctx, filter)
	cars, _ := args.Get(0).([]*domain.Car)
	return cars, args.Error(1)
}

const location int64 = 3

func car(id int64, supplierID int64, name string) *domain.Car {
	return &domain.Car{
		ID:        id,
		Supplier:  domain.Supplier{ID: supplierID, FullName: name},
		Gearbox:   domain.GearboxManual,
		Mileage:   domain.UnlimitedMileage,
		Available: true,
		Locations: []int64{location},
	}
}

func newUseCase(catalog CatalogProvider) *UseCase {
	return NewUseCase(catalog, language.English, metrics.Noop{}, logger.NewWithWriter(&bytes.Buffer{}, "info"))
}

func TestUseCase_Execute(t *testing.T) {
	automatic := car(4, 4, "Delta")
	automatic.Gearbox = domain.GearboxAutomatic

	catalog := &catalogMock{}
	catalog.On("GetCatalog", mock.Anything, domain.CatalogFilter{LocationID: ptr.Ptr(location), OnlyAvailable: true}).
		Return([]*domain.Car{
			car(1, 1, "Beta"),
			car(2, 2, "alpha"),
			car(3, 3, "Gamma"),
			car(5, 1, "Beta"),
			automatic,
		}, nil)

	resp, err := newUseCase(catalog).Execute(context.Background(), &Request{
		Query: domain.FilterQuery{PickupLocation: ptr.Ptr(location), Gearbox: []string{domain.GearboxManual}},
	})

	require.NoError(t, err)
	require.Len(t, resp.Suppliers, 3)
	assert.Equal(t, "alpha", resp.Suppliers[0].FullName)
	assert.Equal(t, "Beta", resp.Suppliers[1].FullName)
	assert.Equal(t, 2, resp.Suppliers[1].CarCount)
	assert.Equal(t, "Gamma", resp.Suppliers[2].FullName)
	catalog.AssertExpectations(t)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	t.Run("location required", func(t *testing.T) {
		catalog := &catalogMock{}

		_, err := newUseCase(catalog).Execute(context.Background(), &Request{})

		assert.ErrorIs(t, err, ErrInvalidLocation)
		catalog.AssertNotCalled(t, "GetCatalog", mock.Anything, mock.Anything)
	})

	t.Run("catalog failure", func(t *testing.T) {
		catalog := &catalogMock{}
		catalog.On("GetCatalog", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

		_, err := newUseCase(catalog).Execute(context.Background(), &Request{
			Query: domain.FilterQuery{PickupLocation: ptr.Ptr(location)},
		})

		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("empty availability selection is ignored for customers", func(t *testing.T) {
		catalog := &catalogMock{}
		catalog.On("GetCatalog", mock.Anything, mock.Anything).Return([]*domain.Car{car(1, 1, "Acme")}, nil)

		resp, err := newUseCase(catalog).Execute(context.Background(), &Request{
			Query: domain.FilterQuery{PickupLocation: ptr.Ptr(location), Availability: []string{}},
		})

		require.NoError(t, err)
		assert.Len(t, resp.Suppliers, 1)
	})
}
