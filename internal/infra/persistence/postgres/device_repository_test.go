package postgres

import (
	"context"
	"testing"

	"giftshop/internal/domain/entity"
	"giftshop/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceRepository_CreateDevice_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDeviceRepository(db)

	mock.ExpectQuery(`INSERT INTO "user_devices"`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	err := repo.CreateDevice(context.Background(), &entity.UserDevice{
		UserID:   uuid.New(),
		DeviceID: "phone-1",
		FCMToken: "token",
		Platform: "ios",
		IsActive: true,
	})
	require.ErrorIs(t, err, repository.ErrDuplicateDevice)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeviceRepository_DeleteDevice(t *testing.T) {
	deviceID := uuid.New()

	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "deactivates then soft-deletes",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE "user_devices" SET "is_active"=.+ WHERE id = .+`).
					WithArgs(false, sqlmock.AnyArg(), deviceID).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(`UPDATE "user_devices" SET "deleted_at"=.+ WHERE id = .+`).
					WithArgs(sqlmock.AnyArg(), deviceID).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "unknown device rolls back",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE "user_devices" SET "is_active"=.+ WHERE id = .+`).
					WithArgs(false, sqlmock.AnyArg(), deviceID).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			},
			wantErr: repository.ErrDeviceNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.setupMock(mock)

			err := NewDeviceRepository(db).DeleteDevice(context.Background(), deviceID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDeviceRepository_DeleteDevices(t *testing.T) {
	db, mock := newMockDB(t)
	first, second := uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "user_devices" SET "is_active"=.+ WHERE id IN \(.+,.+\)`).
		WithArgs(false, sqlmock.AnyArg(), first, second).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "user_devices" SET "deleted_at"=.+ WHERE id IN \(.+,.+\)`).
		WithArgs(sqlmock.AnyArg(), first, second).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	removed, err := NewDeviceRepository(db).DeleteDevices(context.Background(), []uuid.UUID{first, second})
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	require.NoError(t, mock.ExpectationsWereMet())

	removed, err = NewDeviceRepository(db).DeleteDevices(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, removed)
}
