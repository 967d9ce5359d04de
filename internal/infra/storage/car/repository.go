package car

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

// carColumns колонки автомобиля вместе с данными поставщика (JOIN suppliers s)
var carColumns = []string{
	"c.id",
	"c.name",
	"s.id",
	"s.full_name",
	"s.avatar",
	"s.minimum_rental_days",
	"s.price_change_rate",
	"c.daily_price",
	"c.hourly_price",
	"c.bi_weekly_price",
	"c.weekly_price",
	"c.monthly_price",
	"c.discounted_daily_price",
	"c.discounted_hourly_price",
	"c.discounted_bi_weekly_price",
	"c.discounted_weekly_price",
	"c.discounted_monthly_price",
	"c.is_date_based_price",
	"c.cancellation",
	"c.amendments",
	"c.theft_protection",
	"c.collision_damage_waiver",
	"c.full_insurance",
	"c.additional_driver",
	"c.type",
	"c.gearbox",
	"c.fuel_policy",
	"c.car_range",
	"c.seats",
	"c.doors",
	"c.aircon",
	"c.mileage",
	"c.multimedia",
	"c.rating",
	"c.deposit",
	"c.available",
	"c.locations",
	"c.created_at",
	"c.updated_at",
}

// Repository репозиторий каталога автомобилей
type Repository struct {
	db        DBExecutor
	txManager TxManager
}

// NewRepository создает новый экземпляр репозитория автомобилей
func NewRepository(db DBExecutor, txManager TxManager) *Repository {
	return &Repository{db: db, txManager: txManager}
}

// GetCatalog загружает автомобили вместе с поставщиками и тарифами по датам
// Оба запроса выполняются в одной read-only транзакции, чтобы тарифы соответствовали машинам.
// Фильтр только сужает выборку, основная фильтрация выполняется в eligibility.
func (r *Repository) GetCatalog(ctx context.Context, filter domain.CatalogFilter) ([]*domain.Car, error) {
	var cars []*domain.Car

	err := r.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error
		cars, err = r.selectCars(ctx, filter)
		if err != nil {
			return err
		}
		return r.attachDateBasedPrices(ctx, cars)
	})
	if err != nil {
		if isRepositoryError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: GetCatalog: %v", ErrTransaction, err)
	}

	return cars, nil
}

// GetByID получает автомобиль по ID вместе с поставщиком и тарифами по датам
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(carColumns...).
		From("cars c").
		Join("suppliers s ON s.id = c.supplier_id").
		Where(squirrel.Eq{"c.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	car, err := scanCar(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCarNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan car: %v", ErrScanRow, err)
	}

	if err := r.attachDateBasedPrices(ctx, []*domain.Car{car}); err != nil {
		return nil, err
	}

	return car, nil
}

func (r *Repository) selectCars(ctx context.Context, filter domain.CatalogFilter) ([]*domain.Car, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(carColumns...).
		From("cars c").
		Join("suppliers s ON s.id = c.supplier_id").
		OrderBy("c.id ASC")

	// Сужение выборки по поставщикам
	if len(filter.SupplierIDs) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"c.supplier_id": filter.SupplierIDs})
	}

	// Только машины, доступные в точке выдачи
	if filter.LocationID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Expr("? = ANY(c.locations)", *filter.LocationID))
	}

	if filter.OnlyAvailable {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"c.available": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetCatalog - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetCatalog - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	cars := make([]*domain.Car, 0)
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetCatalog - scan car: %v", ErrScanRow, err)
		}
		cars = append(cars, car)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetCatalog - rows error: %v", ErrScanRow, err)
	}

	return cars, nil
}

// attachDateBasedPrices подгружает тарифы по датам одним запросом для всех машин.
// Порядок тарифов сохраняется по колонке position.
func (r *Repository) attachDateBasedPrices(ctx context.Context, cars []*domain.Car) error {
	byID := make(map[int64]*domain.Car)
	ids := make([]int64, 0)
	for _, car := range cars {
		if car.IsDateBasedPrice {
			byID[car.ID] = car
			ids = append(ids, car.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("car_id", "start_date", "end_date", "daily_price").
		From("date_based_prices").
		Where(squirrel.Eq{"car_id": ids}).
		OrderBy("car_id ASC", "position ASC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: attachDateBasedPrices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachDateBasedPrices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var carID int64
		var price domain.DateBasedPrice
		if err := rows.Scan(&carID, &price.StartDate, &price.EndDate, &price.DailyPrice); err != nil {
			return fmt.Errorf("%w: attachDateBasedPrices - scan price: %v", ErrScanRow, err)
		}
		if car, ok := byID[carID]; ok {
			car.DateBasedPrices = append(car.DateBasedPrices, price)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachDateBasedPrices - rows error: %v", ErrScanRow, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCar(row rowScanner) (*domain.Car, error) {
	var car domain.Car
	var cancellation, amendments, theftProtection, collisionDamageWaiver, fullInsurance, additionalDriver float64
	var multimedia pq.StringArray
	var locations pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&car.ID,
		&car.Name,
		&car.Supplier.ID,
		&car.Supplier.FullName,
		&car.Supplier.Avatar,
		&car.Supplier.MinimumRentalDays,
		&car.Supplier.PriceChangeRate,
		&car.DailyPrice,
		&car.HourlyPrice,
		&car.BiWeeklyPrice,
		&car.WeeklyPrice,
		&car.MonthlyPrice,
		&car.DiscountedDailyPrice,
		&car.DiscountedHourlyPrice,
		&car.DiscountedBiWeeklyPrice,
		&car.DiscountedWeeklyPrice,
		&car.DiscountedMonthlyPrice,
		&car.IsDateBasedPrice,
		&cancellation,
		&amendments,
		&theftProtection,
		&collisionDamageWaiver,
		&fullInsurance,
		&additionalDriver,
		&car.Type,
		&car.Gearbox,
		&car.FuelPolicy,
		&car.Range,
		&car.Seats,
		&car.Doors,
		&car.Aircon,
		&car.Mileage,
		&multimedia,
		&car.Rating,
		&car.Deposit,
		&car.Available,
		&locations,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	// В БД опции хранятся кодами: -1 недоступна, 0 включена, >0 доплата
	car.Cancellation = domain.OptionFromCode(cancellation)
	car.Amendments = domain.OptionFromCode(amendments)
	car.TheftProtection = domain.OptionFromCode(theftProtection)
	car.CollisionDamageWaiver = domain.OptionFromCode(collisionDamageWaiver)
	car.FullInsurance = domain.OptionFromCode(fullInsurance)
	car.AdditionalDriver = domain.OptionFromCode(additionalDriver)

	car.Multimedia = []string(multimedia)
	car.Locations = []int64(locations)
	car.CreatedAt = createdAt.Time
	car.UpdatedAt = updatedAt.Time

	return &car, nil
}

func isRepositoryError(err error) bool {
	return errors.Is(err, ErrBuildQuery) || errors.Is(err, ErrExecQuery) || errors.Is(err, ErrScanRow)
}
