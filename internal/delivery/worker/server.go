// Package worker serves the Pub/Sub push endpoint that turns order events into device notifications.
package worker

import (
	"log/slog"
	"net/http"

	"giftshop/config"
	"giftshop/internal/delivery"
	"giftshop/internal/delivery/middleware"
	"giftshop/internal/delivery/worker/handler"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// PushPath is where Pub/Sub (or the local publisher) delivers order events.
const PushPath = "/push/order-events"

// maxPushBodySize matches the Pub/Sub message size limit plus envelope overhead.
const maxPushBodySize = "11M"

type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer listens on worker.port so the API and the worker can share a host.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := delivery.NewEchoServer(params.Lc, "worker", params.Cfg.WorkerPort(), params.Cfg.HTTP.Timeouts, params.Logger)
	e := srv.Echo

	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(params.Logger).Process,
		middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle,
	)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.POST(PushPath, params.PushHandler.HandlePush, echomiddleware.BodyLimit(maxPushBodySize))

	return srv, nil
}
