package calculate_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	carRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/car"
	"github.com/m04kA/SMC-RentalService/internal/pricing"
)

// Результаты расчета для метрик
const (
	resultOK         = "ok"
	resultInvalid    = "invalid"
	resultIncomplete = "incomplete_tariff"
)

// UseCase use case для расчета стоимости аренды
type UseCase struct {
	carRepo CarRepository
	metrics Metrics
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(carRepo CarRepository, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		carRepo: carRepo,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute выполняет расчет стоимости аренды автомобиля
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CalculatePrice: car=%d, from=%s, to=%s",
		req.CarID, req.From.Format(domain.DateTimeFormat), req.To.Format(domain.DateTimeFormat))

	// 1. Валидация входных данных
	if req.CarID <= 0 {
		uc.logger.Warn("CalculatePrice: invalid car id=%d", req.CarID)
		return nil, fmt.Errorf("%w: carID must be positive", ErrInvalidInput)
	}

	interval := domain.RentalInterval{From: req.From, To: req.To}
	if err := pricing.ValidateInterval(interval); err != nil {
		uc.logger.Warn("CalculatePrice: validation failed: %v", err)
		uc.metrics.ObserveQuote(resultInvalid)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}

	// 2. Получаем автомобиль вместе с поставщиком
	car, err := uc.carRepo.GetByID(ctx, req.CarID)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			uc.logger.Warn("CalculatePrice: car id=%d not found", req.CarID)
			return nil, ErrCarNotFound
		}
		uc.logger.Error("CalculatePrice: failed to get car id=%d: %v", req.CarID, err)
		return nil, fmt.Errorf("%w: failed to get car: %v", ErrInternal, err)
	}

	// 3. Проверяем минимальный срок аренды поставщика
	days := interval.Days()
	if !car.Supplier.AcceptsRentalDays(days) {
		uc.logger.Warn("CalculatePrice: %d days is below supplier id=%d minimum of %d",
			days, car.Supplier.ID, *car.Supplier.MinimumRentalDays)
		uc.metrics.ObserveQuote(resultInvalid)
		return nil, fmt.Errorf("%w: minimum is %d days", ErrRentalTooShort, *car.Supplier.MinimumRentalDays)
	}

	// 4. Считаем стоимость с наценкой поставщика
	quote, err := pricing.Calculate(car, interval, car.Supplier.PriceChangeRate, req.Options)
	if err != nil {
		switch {
		case errors.Is(err, pricing.ErrIncompleteTariff):
			uc.logger.Warn("CalculatePrice: car id=%d has incomplete tariff: %v", car.ID, err)
			uc.metrics.ObserveQuote(resultIncomplete)
			return nil, fmt.Errorf("%w: %v", ErrIncompleteTariff, err)
		case errors.Is(err, pricing.ErrInvalidInterval):
			uc.metrics.ObserveQuote(resultInvalid)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
		default:
			uc.logger.Error("CalculatePrice: failed to calculate price for car id=%d: %v", car.ID, err)
			return nil, fmt.Errorf("%w: failed to calculate price: %v", ErrInternal, err)
		}
	}

	uc.metrics.ObserveQuote(resultOK)
	uc.logger.Info("CalculatePrice: car=%d, days=%d, total=%.2f", car.ID, quote.Days, quote.Total)

	return &Response{
		CarID:           car.ID,
		SupplierID:      car.Supplier.ID,
		Days:            quote.Days,
		BasePrice:       quote.Base,
		OptionsPrice:    quote.Options,
		PriceChangeRate: car.Supplier.PriceChangeRate,
		Adjustment:      quote.Adjustment,
		TotalPrice:      quote.Total,
		Tier:            quote.Tier,
	}, nil
}
