package supplier

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id, full_name, avatar, minimum_rental_days, price_change_rate FROM suppliers WHERE id = \$1`).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "avatar", "minimum_rental_days", "price_change_rate"}).
				AddRow(int64(7), "Acme Rent", "acme.png", nil, -15.5))

		supplier, err := repo.GetByID(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, "Acme Rent", supplier.FullName)
		assert.Equal(t, ptr.Ptr("acme.png"), supplier.Avatar)
		assert.Nil(t, supplier.MinimumRentalDays)
		assert.Equal(t, -15.5, supplier.PriceChangeRate)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM suppliers`).
			WithArgs(int64(8)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(ctx, 8)

		assert.ErrorIs(t, err, ErrSupplierNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdatePricing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	settings := domain.PricingSettings{PriceChangeRate: 12, MinimumRentalDays: ptr.Ptr(2)}

	t.Run("updated", func(t *testing.T) {
		mock.ExpectExec(`UPDATE suppliers SET price_change_rate = \$1, minimum_rental_days = \$2, updated_at = NOW\(\) WHERE id = \$3`).
			WithArgs(12.0, settings.MinimumRentalDays, int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdatePricing(ctx, 7, settings))
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(`UPDATE suppliers`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdatePricing(ctx, 9, settings), ErrSupplierNotFound)
	})

	t.Run("exec error", func(t *testing.T) {
		mock.ExpectExec(`UPDATE suppliers`).
			WillReturnError(errors.New("deadlock detected"))

		assert.ErrorIs(t, repo.UpdatePricing(ctx, 7, settings), ErrExecQuery)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
