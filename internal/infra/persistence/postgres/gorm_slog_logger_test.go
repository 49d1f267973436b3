package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"giftshop/config"
	deliverycontext "giftshop/internal/delivery/context"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func sqlFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		want    string
	}{
		{name: "missing row is silent", err: gorm.ErrRecordNotFound},
		{name: "driver failure", err: errors.New("connection reset"), want: "GORM query failed"},
		{name: "lock timeout", err: &pgconn.PgError{Code: pgerrcode.LockNotAvailable}, want: "GORM lock contention"},
		{name: "slow statement", elapsed: time.Second, want: "GORM slow query"},
		{name: "fast statement outside debug", elapsed: time.Millisecond},
		{name: "fast statement in debug", debug: true, elapsed: time.Millisecond, want: "GORM query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			l := newGormSlogLogger(base, cfg)
			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), sqlFn(`SELECT 1`), tt.err)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	scoped := slog.New(slog.NewTextHandler(&buf, nil)).With(slog.String("request_id", "req-9"))
	ctx := deliverycontext.WithLogger(context.Background(), scoped)

	l := newGormSlogLogger(slog.New(slog.DiscardHandler), &config.Config{})
	l.Trace(ctx, time.Now(), sqlFn(`UPDATE "gifts"`), errors.New("boom"))

	assert.Contains(t, buf.String(), "request_id=req-9")
}
