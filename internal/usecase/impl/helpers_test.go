package impl

import (
	"io"
	"log/slog"
	"time"

	"giftshop/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(restockOnCancel bool) *config.Config {
	return &config.Config{
		Orders: &config.OrdersConfig{
			DefaultDeliveryWindow: time.Hour,
			RestockOnCancel:       &restockOnCancel,
		},
	}
}
