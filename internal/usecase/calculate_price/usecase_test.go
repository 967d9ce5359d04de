package calculate_price

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	carRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/car"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

type carRepositoryMock struct {
	mock.Mock
}

func (m *carRepositoryMock) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	args := m.Called(ctx, id)
	car, _ := args.Get(0).(*domain.Car)
	return car, args.Error(1)
}

type metricsMock struct {
	results []string
}

func (m *metricsMock) ObserveQuote(result string) {
	m.results = append(m.results, result)
}

var pickup = time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)

func testCar() *domain.Car {
	return &domain.Car{
		ID:                    1,
		Supplier:              domain.Supplier{ID: 7, FullName: "Acme", PriceChangeRate: 10},
		DailyPrice:            ptr.Ptr(100.0),
		Cancellation:          domain.Surcharge(20),
		Amendments:            domain.Unavailable(),
		TheftProtection:       domain.Surcharge(5),
		CollisionDamageWaiver: domain.Unavailable(),
		FullInsurance:         domain.Included(),
		AdditionalDriver:      domain.Unavailable(),
	}
}

func newUseCase(repo CarRepository) (*UseCase, *metricsMock) {
	m := &metricsMock{}
	return NewUseCase(repo, m, logger.NewWithWriter(&bytes.Buffer{}, "info")), m
}

func TestUseCase_Execute(t *testing.T) {
	repo := &carRepositoryMock{}
	repo.On("GetByID", mock.Anything, int64(1)).Return(testCar(), nil)
	uc, m := newUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		CarID:   1,
		From:    pickup,
		To:      pickup.Add(2 * domain.Day),
		Options: domain.CarOptions{Cancellation: true, TheftProtection: true, FullInsurance: true},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Days)
	assert.Equal(t, 200.0, resp.BasePrice)
	assert.Equal(t, 30.0, resp.OptionsPrice)
	assert.InDelta(t, 20.0, resp.Adjustment, 1e-9)
	assert.InDelta(t, 250.0, resp.TotalPrice, 1e-9)
	assert.Equal(t, int64(7), resp.SupplierID)
	assert.Equal(t, []string{resultOK}, m.results)
	repo.AssertExpectations(t)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	incomplete := testCar()
	incomplete.DailyPrice = nil

	withMinimum := testCar()
	withMinimum.Supplier.MinimumRentalDays = ptr.Ptr(3)

	tests := []struct {
		name    string
		req     *Request
		car     *domain.Car
		repoErr error
		err     error
	}{
		{
			name: "non-positive car id",
			req:  &Request{CarID: 0, From: pickup, To: pickup.Add(domain.Day)},
			err:  ErrInvalidInput,
		},
		{
			name: "reversed interval",
			req:  &Request{CarID: 1, From: pickup, To: pickup.Add(-domain.Day)},
			err:  ErrInvalidInterval,
		},
		{
			name:    "car not found",
			req:     &Request{CarID: 1, From: pickup, To: pickup.Add(domain.Day)},
			repoErr: carRepo.ErrCarNotFound,
			err:     ErrCarNotFound,
		},
		{
			name:    "storage failure",
			req:     &Request{CarID: 1, From: pickup, To: pickup.Add(domain.Day)},
			repoErr: errors.New("connection refused"),
			err:     ErrInternal,
		},
		{
			name: "incomplete tariff",
			req:  &Request{CarID: 1, From: pickup, To: pickup.Add(domain.Day)},
			car:  incomplete,
			err:  ErrIncompleteTariff,
		},
		{
			name: "below supplier minimum",
			req:  &Request{CarID: 1, From: pickup, To: pickup.Add(2 * domain.Day)},
			car:  withMinimum,
			err:  ErrRentalTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &carRepositoryMock{}
			if tt.car != nil || tt.repoErr != nil {
				repo.On("GetByID", mock.Anything, tt.req.CarID).Return(tt.car, tt.repoErr)
			}
			uc, _ := newUseCase(repo)

			resp, err := uc.Execute(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.err)
			assert.Nil(t, resp)
			repo.AssertExpectations(t)
		})
	}
}

func TestUseCase_Execute_DateBasedTier(t *testing.T) {
	car := testCar()
	car.Supplier.PriceChangeRate = 0
	car.IsDateBasedPrice = true
	car.DateBasedPrices = []domain.DateBasedPrice{{
		StartDate:  time.Date(2025, time.February, 20, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		DailyPrice: 45,
	}}

	repo := &carRepositoryMock{}
	repo.On("GetByID", mock.Anything, int64(1)).Return(car, nil)
	uc, _ := newUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{CarID: 1, From: pickup, To: pickup.Add(3 * domain.Day)})

	require.NoError(t, err)
	assert.Equal(t, 135.0, resp.TotalPrice)
	require.NotNil(t, resp.Tier)
	assert.Equal(t, 45.0, resp.Tier.DailyPrice)
}
