package postgres

import (
	"context"
	"testing"
	"time"

	"giftshop/internal/domain/entity"
	"giftshop/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_Update_UnknownOrder(t *testing.T) {
	db, mock := newMockDB(t)
	orderID := uuid.New()

	mock.ExpectExec(`UPDATE "orders" SET .+ WHERE id = .+`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewOrderRepository(db).Update(context.Background(), &entity.Order{
		ID:        orderID,
		Status:    entity.OrderStatusCanceled,
		Payment:   entity.PaymentInfo{Method: entity.PaymentMethodCard, Status: entity.PaymentStatusPending},
		UpdatedAt: time.Now(),
	})
	require.ErrorIs(t, err, repository.ErrOrderNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_AppendTracking(t *testing.T) {
	orderID := uuid.New()
	event := entity.TrackingEvent{
		Status:      entity.OrderStatusCanceled,
		Timestamp:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Description: "changed mind",
	}

	t.Run("inserts the event", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`INSERT INTO "order_tracking_events" .+ RETURNING "id"`).
			WithArgs(orderID, "canceled", "changed mind", event.Timestamp).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

		require.NoError(t, NewOrderRepository(db).AppendTracking(context.Background(), orderID, event))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing order maps the foreign key violation", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`INSERT INTO "order_tracking_events"`).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})

		err := NewOrderRepository(db).AppendTracking(context.Background(), orderID, event)
		assert.ErrorIs(t, err, repository.ErrOrderNotFound)
	})
}
