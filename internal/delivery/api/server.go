package api

import (
	"log/slog"

	"giftshop/config"
	"giftshop/internal/delivery"
	apimiddleware "giftshop/internal/delivery/api/middleware"
	"giftshop/internal/delivery/api/router"
	"giftshop/internal/delivery/api/validator"
	"giftshop/internal/delivery/middleware"
	"giftshop/internal/domain/service"

	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type ServerParams struct {
	fx.In

	Lc              fx.Lifecycle
	Cfg             *config.Config
	Logger          *slog.Logger
	Validator       service.SchemaValidator
	ErrorMiddleware *apimiddleware.ErrorMiddleware
	RouterParams    router.RouterParams
}

// NewServer builds the public JSON API.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := delivery.NewEchoServer(params.Lc, "api", params.Cfg.HTTP.Port, params.Cfg.HTTP.Timeouts, params.Logger)
	e := srv.Echo

	// Order matters: the request ID must exist before the logger reads it.
	e.Use(
		echomiddleware.Recover(),
		middleware.NewRequestIDMiddleware(params.Logger).Process,
		middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle,
		echomiddleware.CORS(),
		echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize),
	)
	e.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError
	e.Validator = validator.New(params.Validator)

	router.NewRouter(params.RouterParams).RegisterRoutes(e)

	return srv, nil
}
