package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-manager/internal/httperr"
)

// newMockInventoryRepo usa o dialeto postgres sobre sqlmock para conferir o SQL gerado.
func newMockInventoryRepo(t *testing.T) (*InventoryGormRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return NewInventoryGormRepository(gormDB, time.Second), mock, mockDB
}

func productRows(stock int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "shop_id", "name", "cost", "price", "stock", "min_stock"}).
		AddRow("p1", "s1", "Pomada", "10.00", "20.00", stock, 1)
}

func TestSellConditionalUpdate(t *testing.T) {
	t.Run("guarded decrement then sale insert", func(t *testing.T) {
		repo, mock, mockDB := newMockInventoryRepo(t)
		defer mockDB.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "inventory" WHERE id = \$1 AND shop_id = \$2`).
			WillReturnRows(productRows(5))
		mock.ExpectExec(`UPDATE "inventory" SET "stock"=stock - \$1.*stock >= `).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO "sales"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		sale, err := repo.Sell(context.Background(), "s1", "p1", 3, seller("s1"), time.Now())
		require.NoError(t, err)
		assert.True(t, dec("30").Equal(sale.Profit))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lost race rolls back without sale", func(t *testing.T) {
		repo, mock, mockDB := newMockInventoryRepo(t)
		defer mockDB.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "inventory"`).
			WillReturnRows(productRows(5))
		// outra transação baixou o estoque depois da leitura
		mock.ExpectExec(`UPDATE "inventory" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		_, err := repo.Sell(context.Background(), "s1", "p1", 3, seller("s1"), time.Now())
		assert.ErrorIs(t, err, httperr.ErrInsufficientStock)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("driver failure is retryable and rolls back", func(t *testing.T) {
		repo, mock, mockDB := newMockInventoryRepo(t)
		defer mockDB.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT \* FROM "inventory"`).
			WillReturnRows(productRows(5))
		mock.ExpectExec(`UPDATE "inventory" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO "sales"`).
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		_, err := repo.Sell(context.Background(), "s1", "p1", 1, seller("s1"), time.Now())
		require.Error(t, err)
		assert.True(t, httperr.IsRetryable(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
