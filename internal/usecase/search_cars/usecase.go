package search_cars

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/eligibility"
)

// UseCase use case для поиска автомобилей по фильтру
type UseCase struct {
	catalog CatalogProvider
	metrics Metrics
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalog CatalogProvider, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		catalog: catalog,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute выполняет поиск автомобилей
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SearchCars: mode=%s, page=%d, size=%d", req.Mode, req.Page, req.Size)

	// 1. Валидация пагинации
	page, size, err := normalizePage(req.Page, req.Size)
	if err != nil {
		uc.logger.Warn("SearchCars: validation failed: %v", err)
		return nil, err
	}

	// 2. Компилируем фильтр (проверка точки выдачи)
	matcher, err := eligibility.Compile(req.Query, req.Mode)
	if err != nil {
		if errors.Is(err, eligibility.ErrInvalidLocation) {
			uc.logger.Warn("SearchCars: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidLocation, err)
		}
		return nil, fmt.Errorf("%w: failed to compile filter: %v", ErrInternal, err)
	}

	// Пустой выбор пробега или доступности - каталог не загружаем
	if matcher.MatchesNothing() {
		uc.logger.Info("SearchCars: filter matches nothing")
		uc.metrics.ObserveSearch(req.Mode.String(), 0)
		return &Response{Cars: []*domain.Car{}, Total: 0, Page: page, Size: size}, nil
	}

	// 3. Загружаем каталог, сузив его на уровне БД
	cars, err := uc.catalog.GetCatalog(ctx, catalogFilter(req.Query, req.Mode))
	if err != nil {
		uc.logger.Error("SearchCars: failed to load catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to load catalog: %v", ErrInternal, err)
	}

	// 4. Фильтруем и сортируем
	matched := matcher.Filter(cars)
	sortByDailyPrice(matched)

	uc.metrics.ObserveSearch(req.Mode.String(), len(matched))
	uc.logger.Info("SearchCars: mode=%s, catalog=%d, matched=%d", req.Mode, len(cars), len(matched))

	// 5. Пагинация
	return &Response{
		Cars:  paginate(matched, page, size),
		Total: len(matched),
		Page:  page,
		Size:  size,
	}, nil
}

// catalogFilter строит фильтр для загрузки каталога
// Клиентам недоступные машины не показываются, поэтому их отсекает БД
func catalogFilter(query domain.FilterQuery, mode eligibility.Mode) domain.CatalogFilter {
	return domain.CatalogFilter{
		SupplierIDs:   query.Suppliers,
		LocationID:    query.PickupLocation,
		OnlyAvailable: mode == eligibility.ModeFrontend,
	}
}

func normalizePage(page, size int) (int, int, error) {
	if page < 0 {
		return 0, 0, fmt.Errorf("%w: page must not be negative", ErrInvalidInput)
	}
	if size < 0 {
		return 0, 0, fmt.Errorf("%w: size must not be negative", ErrInvalidInput)
	}
	if page == 0 {
		page = 1
	}
	if size == 0 {
		size = domain.DefaultPageSize
	}
	if size > domain.MaxPageSize {
		size = domain.MaxPageSize
	}
	// (page-1)*size должно помещаться в int
	if page > math.MaxInt/size {
		return 0, 0, fmt.Errorf("%w: page %d is out of range", ErrInvalidInput, page)
	}
	return page, size, nil
}

// sortByDailyPrice сортирует по дневной цене, машины без цены в конце, при равенстве по ID
func sortByDailyPrice(cars []*domain.Car) {
	price := func(c *domain.Car) float64 {
		if c.DailyPrice == nil {
			return math.Inf(1)
		}
		return *c.DailyPrice
	}

	sort.SliceStable(cars, func(i, j int) bool {
		pi, pj := price(cars[i]), price(cars[j])
		if pi != pj {
			return pi < pj
		}
		return cars[i].ID < cars[j].ID
	})
}

func paginate(cars []*domain.Car, page, size int) []*domain.Car {
	if page-1 >= (len(cars)+size-1)/size {
		return []*domain.Car{}
	}
	start := (page - 1) * size
	end := start + size
	if end > len(cars) {
		end = len(cars)
	}
	return cars[start:end]
}
