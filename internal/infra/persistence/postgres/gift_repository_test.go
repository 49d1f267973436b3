package postgres

import (
	"bytes"
	"context"
	"testing"
	"time"

	"giftshop/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestGiftRepository_ReserveStock(t *testing.T) {
	giftID := uuid.New()

	tests := []struct {
		name      string
		quantity  int
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name:     "reserves when enough units remain",
			quantity: 2,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE "gifts" SET .+ WHERE \(id = .+ AND stock_count >= .+\)`).
					WithArgs(2, 2, sqlmock.AnyArg(), giftID, 2).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:     "insufficient stock leaves the row untouched",
			quantity: 5,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE "gifts" SET .+ WHERE \(id = .+ AND stock_count >= .+\)`).
					WithArgs(5, 5, sqlmock.AnyArg(), giftID, 5).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(`SELECT count\(\*\) FROM "gifts" WHERE id = \$1`).
					WithArgs(giftID).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
			},
			wantErr: repository.ErrInsufficientStock,
		},
		{
			name:     "unknown gift",
			quantity: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE "gifts" SET .+ WHERE \(id = .+ AND stock_count >= .+\)`).
					WithArgs(1, 1, sqlmock.AnyArg(), giftID, 1).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectQuery(`SELECT count\(\*\) FROM "gifts" WHERE id = \$1`).
					WithArgs(giftID).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
			},
			wantErr: repository.ErrGiftNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.setupMock(mock)

			err := NewGiftRepository(db).ReserveStock(context.Background(), giftID, tt.quantity)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGiftRepository_ReserveStock_RejectsNonPositiveQuantity(t *testing.T) {
	db, mock := newMockDB(t)

	err := NewGiftRepository(db).ReserveStock(context.Background(), uuid.New(), 0)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGiftRepository_ReleaseStock(t *testing.T) {
	giftID := uuid.New()

	t.Run("adds units back", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE "gifts" SET .+ WHERE id = \$4`).
			WithArgs(3, 3, sqlmock.AnyArg(), giftID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewGiftRepository(db).ReleaseStock(context.Background(), giftID, 3))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown gift", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE "gifts" SET .+ WHERE id = \$4`).
			WithArgs(3, 3, sqlmock.AnyArg(), giftID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewGiftRepository(db).ReleaseStock(context.Background(), giftID, 3)
		assert.ErrorIs(t, err, repository.ErrGiftNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGiftRepository_SetStock_ClampsAndDerivesAvailability(t *testing.T) {
	db, mock := newMockDB(t)
	giftID := uuid.New()

	mock.ExpectExec(`UPDATE "gifts" SET "in_stock"=\$1,"stock_count"=\$2,"updated_at"=\$3 WHERE id = \$4`).
		WithArgs(false, 0, sqlmock.AnyArg(), giftID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewGiftRepository(db).SetStock(context.Background(), giftID, -4))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGiftRepository_FindByIDsForUpdate_LocksInAscendingOrder(t *testing.T) {
	db, mock := newMockDB(t)

	first, second := uuid.New(), uuid.New()
	if bytes.Compare(first[:], second[:]) > 0 {
		first, second = second, first
	}
	now := time.Now()

	columns := []string{
		"id", "name", "description", "category", "image_url", "price", "in_stock", "stock_count",
		"age_min", "age_max", "gender", "estimated_delivery_minutes", "created_at", "updated_at", "deleted_at",
	}
	mock.ExpectQuery(`SELECT \* FROM "gifts" WHERE id IN \(\$1,\$2\) .*ORDER BY id ASC FOR UPDATE`).
		WithArgs(first, second).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(first.String(), "Robot Kit", "", "toys", "", "10.00", true, 3, 6, 12, "unisex", 30, now, now, nil).
			AddRow(second.String(), "Picture Book", "", "books", "", "5.50", false, 0, 2, 6, "girl", 45, now, now, nil))

	// Duplicates and reverse order in the request must not change the lock order.
	gifts, err := NewGiftRepository(db).FindByIDsForUpdate(context.Background(), []uuid.UUID{second, first, second})
	require.NoError(t, err)
	require.Len(t, gifts, 2)

	got := []uuid.UUID{gifts[0].ID, gifts[1].ID}
	if diff := cmp.Diff([]uuid.UUID{first, second}, got); diff != "" {
		t.Errorf("gift order mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, gifts[0].Price.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, 3, gifts[0].StockCount)
	assert.False(t, gifts[1].InStock)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGiftRepository_FindByIDsForUpdate_Empty(t *testing.T) {
	db, mock := newMockDB(t)

	gifts, err := NewGiftRepository(db).FindByIDsForUpdate(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, gifts)
	assert.NoError(t, mock.ExpectationsWereMet())
}
