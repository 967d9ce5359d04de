package search_suppliers

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/text/language"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/eligibility"
)

const metricsMode = "suppliers"

// UseCase use case для поиска поставщиков по фильтру автомобилей
type UseCase struct {
	catalog CatalogProvider
	locale  language.Tag
	metrics Metrics
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
// locale определяет правила сортировки имен поставщиков
func NewUseCase(catalog CatalogProvider, locale language.Tag, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		catalog: catalog,
		locale:  locale,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute выполняет поиск поставщиков
// Поиск всегда клиентский: точка выдачи обязательна
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SearchSuppliers: location=%v", req.Query.PickupLocation)

	// 1. Компилируем фильтр (проверка точки выдачи)
	matcher, err := eligibility.Compile(req.Query, eligibility.ModeFrontend)
	if err != nil {
		if errors.Is(err, eligibility.ErrInvalidLocation) {
			uc.logger.Warn("SearchSuppliers: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidLocation, err)
		}
		return nil, fmt.Errorf("%w: failed to compile filter: %v", ErrInternal, err)
	}

	if matcher.MatchesNothing() {
		uc.metrics.ObserveSearch(metricsMode, 0)
		return &Response{Suppliers: []eligibility.SupplierGroup{}}, nil
	}

	// 2. Загружаем доступные машины в точке выдачи
	cars, err := uc.catalog.GetCatalog(ctx, domain.CatalogFilter{
		SupplierIDs:   req.Query.Suppliers,
		LocationID:    req.Query.PickupLocation,
		OnlyAvailable: true,
	})
	if err != nil {
		uc.logger.Error("SearchSuppliers: failed to load catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to load catalog: %v", ErrInternal, err)
	}

	// 3. Группируем подходящие машины по поставщикам
	groups := eligibility.CountBySupplier(matcher.Filter(cars))
	eligibility.SortSupplierGroups(groups, uc.locale)

	uc.metrics.ObserveSearch(metricsMode, len(groups))
	uc.logger.Info("SearchSuppliers: catalog=%d, suppliers=%d", len(cars), len(groups))

	return &Response{Suppliers: groups}, nil
}
