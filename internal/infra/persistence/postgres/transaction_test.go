package postgres

import (
	"context"
	"testing"

	"giftshop/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lockTimeoutSQL = `SET LOCAL lock_timeout = '5000ms'`

func TestTransactionManager_Execute(t *testing.T) {
	giftID := uuid.New()
	errBusiness := errors.New("business rule failed")

	tests := []struct {
		name       string
		setupMock  func(mock sqlmock.Sqlmock)
		fn         func(ctx context.Context, f repository.RepositoryFactory) error
		wantErr    error
		contention bool
	}{
		{
			name: "commits repository work",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(lockTimeoutSQL).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec(`UPDATE "gifts" SET .+ WHERE \(id = .+ AND stock_count >= .+\)`).
					WithArgs(1, 1, sqlmock.AnyArg(), giftID, 1).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			fn: func(ctx context.Context, f repository.RepositoryFactory) error {
				return f.NewGiftRepository().ReserveStock(ctx, giftID, 1)
			},
		},
		{
			name: "business error rolls back unchanged",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(lockTimeoutSQL).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			},
			fn: func(context.Context, repository.RepositoryFactory) error {
				return errBusiness
			},
			wantErr: errBusiness,
		},
		{
			name: "lock timeout is reported as contention",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(lockTimeoutSQL).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectExec(`UPDATE "gifts" SET .+`).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.LockNotAvailable})
				mock.ExpectRollback()
			},
			fn: func(ctx context.Context, f repository.RepositoryFactory) error {
				return f.NewGiftRepository().ReserveStock(ctx, giftID, 1)
			},
			wantErr:    repository.ErrLockContention,
			contention: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.setupMock(mock)

			ctx := context.Background()
			err := NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
				return tt.fn(ctx, f)
			})

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.contention, errors.Is(err, repository.ErrLockContention))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec(lockTimeoutSQL).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = NewTransactionManager(db).Execute(context.Background(), func(repository.RepositoryFactory) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
