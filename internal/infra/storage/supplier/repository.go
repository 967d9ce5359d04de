package supplier

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

// Repository репозиторий поставщиков
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория поставщиков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает поставщика по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Supplier, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"full_name",
		"avatar",
		"minimum_rental_days",
		"price_change_rate",
	).
		From("suppliers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var supplier domain.Supplier
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&supplier.ID,
		&supplier.FullName,
		&supplier.Avatar,
		&supplier.MinimumRentalDays,
		&supplier.PriceChangeRate,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSupplierNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan supplier: %v", ErrScanRow, err)
	}

	return &supplier, nil
}

// UpdatePricing обновляет наценку и минимальный срок аренды поставщика
// nil в MinimumRentalDays снимает ограничение
func (r *Repository) UpdatePricing(ctx context.Context, id int64, settings domain.PricingSettings) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("suppliers").
		Set("price_change_rate", settings.PriceChangeRate).
		Set("minimum_rental_days", settings.MinimumRentalDays).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdatePricing - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdatePricing - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdatePricing - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSupplierNotFound
	}

	return nil
}
