package delivery

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"giftshop/config"
	"giftshop/internal/domain/lifecycle"
	"giftshop/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// EchoServer serves an echo instance over h2c until the fx lifecycle stops it.
type EchoServer struct {
	name     string
	port     int
	timeouts config.HTTPTimeouts
	logger   *slog.Logger

	Echo *echo.Echo
}

// NewEchoServer returns a server with the timeouts applied and its shutdown hook registered.
func NewEchoServer(lc fx.Lifecycle, name string, port int, timeouts config.HTTPTimeouts, logger *slog.Logger) *EchoServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	s := &EchoServer{
		name:     name,
		port:     port,
		timeouts: timeouts,
		logger:   logger.With(slog.String("server", name)),
		Echo:     e,
	}
	lc.Append(fx.Hook{OnStop: s.shutdown})

	return s
}

// Serve blocks until the listener closes. A graceful shutdown returns nil.
func (s *EchoServer) Serve(_ context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Starting HTTP server", slog.String("host_port", hostPort))

	err := s.Echo.StartH2CServer(hostPort, &http2.Server{IdleTimeout: s.timeouts.IdleTimeout})
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrapf(err, "%s server stopped", s.name)
	}

	return nil
}

func (s *EchoServer) shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.Echo.Shutdown(ctx))
}
