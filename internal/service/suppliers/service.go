package suppliers

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	supplierRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/supplier"
	"github.com/m04kA/SMC-RentalService/internal/service/suppliers/models"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

// Service сервис для работы с ценовыми настройками поставщиков
type Service struct {
	supplierRepo SupplierRepository
	txManager    TransactionManager
	catalog      CatalogInvalidator
	logger       Logger
}

// NewService создает новый экземпляр сервиса поставщиков
// catalog может быть nil, если кэш каталога выключен
func NewService(
	supplierRepo SupplierRepository,
	txManager TransactionManager,
	catalog CatalogInvalidator,
	logger Logger,
) *Service {
	return &Service{
		supplierRepo: supplierRepo,
		txManager:    txManager,
		catalog:      catalog,
		logger:       logger,
	}
}

// GetPricing возвращает ценовые настройки поставщика
func (s *Service) GetPricing(ctx context.Context, supplierID int64) (*models.PricingResponse, error) {
	if supplierID <= 0 {
		return nil, fmt.Errorf("%w: supplierID must be positive", ErrInvalidInput)
	}

	supplier, err := s.getSupplier(ctx, "GetPricing", supplierID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainSupplier(supplier), nil
}

// UpdatePricing заменяет наценку и минимальный срок аренды поставщика
// Обновление и чтение результата выполняются в одной транзакции,
// кэш каталога сбрасывается после коммита
func (s *Service) UpdatePricing(ctx context.Context, req *models.UpdatePricingRequest) (*models.PricingResponse, error) {
	s.logger.Info("UpdatePricing: supplier=%d, rate=%.2f, minDays=%d (0 - без ограничения)",
		req.SupplierID, req.PriceChangeRate, ptr.Value(req.MinimumRentalDays))

	// 1. Валидируем входные данные
	if err := validatePricing(req); err != nil {
		s.logger.Warn("UpdatePricing: validation failed: %v", err)
		return nil, err
	}

	// 2. Сохраняем настройки и читаем актуальное состояние
	var supplier *domain.Supplier
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		if err := s.supplierRepo.UpdatePricing(ctx, req.SupplierID, req.ToDomainSettings()); err != nil {
			if errors.Is(err, supplierRepo.ErrSupplierNotFound) {
				s.logger.Warn("UpdatePricing: supplier id=%d not found", req.SupplierID)
				return ErrSupplierNotFound
			}
			s.logger.Error("UpdatePricing: repository error: %v", err)
			return fmt.Errorf("%w: UpdatePricing - repository error: %v", ErrInternal, err)
		}

		var err error
		supplier, err = s.getSupplier(ctx, "UpdatePricing", req.SupplierID)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrSupplierNotFound) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		s.logger.Error("UpdatePricing: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: UpdatePricing - transaction failed: %v", ErrInternal, err)
	}

	// 3. Сбрасываем кэш каталога, ошибка не критична - снимки истекут по TTL
	if s.catalog != nil {
		if err := s.catalog.Invalidate(ctx); err != nil {
			s.logger.Warn("UpdatePricing: failed to invalidate catalog cache: %v", err)
		}
	}

	s.logger.Info("UpdatePricing: successfully updated supplier id=%d", supplier.ID)
	return models.FromDomainSupplier(supplier), nil
}

func (s *Service) getSupplier(ctx context.Context, op string, supplierID int64) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, supplierID)
	if err != nil {
		if errors.Is(err, supplierRepo.ErrSupplierNotFound) {
			s.logger.Warn("%s: supplier id=%d not found", op, supplierID)
			return nil, ErrSupplierNotFound
		}
		s.logger.Error("%s: failed to get supplier id=%d: %v", op, supplierID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return supplier, nil
}

func validatePricing(req *models.UpdatePricingRequest) error {
	if req.SupplierID <= 0 {
		return fmt.Errorf("%w: supplierID must be positive", ErrInvalidInput)
	}

	if req.PriceChangeRate < domain.MinPriceChangeRate || req.PriceChangeRate > domain.MaxPriceChangeRate {
		return fmt.Errorf("%w: priceChangeRate must be between %d and %d",
			ErrInvalidInput, domain.MinPriceChangeRate, domain.MaxPriceChangeRate)
	}

	if req.MinimumRentalDays != nil && *req.MinimumRentalDays < domain.MinMinimumRentalDays {
		return fmt.Errorf("%w: minimumRentalDays must be at least %d", ErrInvalidInput, domain.MinMinimumRentalDays)
	}

	return nil
}
