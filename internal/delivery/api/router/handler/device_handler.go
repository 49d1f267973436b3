package handler

import (
	"log/slog"
	"net/http"

	"giftshop/internal/delivery/api/middleware"
	"giftshop/internal/delivery/api/response"
	"giftshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler serves /api/v1/devices. Every route acts on the caller's own devices.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	var input usecase.RegisterDeviceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid device input")
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), userID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, device)
}

func (h *DeviceHandler) ListDevices(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "Invalid user ID in token")
	}

	devices, err := h.deviceUC.ListDevices(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nonNil(devices))
}

// RotateToken handles PUT /devices/:id/token.
func (h *DeviceHandler) RotateToken(c echo.Context) error {
	userID, deviceID, ok, err := callerDevice(c)
	if !ok {
		return err
	}

	var input usecase.RotateTokenInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid FCM token input")
	}

	if err := h.deviceUC.RotateToken(c.Request().Context(), userID, deviceID, input.FCMToken); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "FCM token updated"})
}

func (h *DeviceHandler) RemoveDevice(c echo.Context) error {
	userID, deviceID, ok, err := callerDevice(c)
	if !ok {
		return err
	}

	if err := h.deviceUC.RemoveDevice(c.Request().Context(), userID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Device removed"})
}

// callerDevice resolves the caller and the :id path parameter. When ok is
// false the failure response has been written and err is what the handler returns.
func callerDevice(c echo.Context) (userID, deviceID uuid.UUID, ok bool, err error) {
	userID, ok = middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, uuid.Nil, false, response.Unauthorized(c, "Invalid user ID in token")
	}

	deviceID, parseErr := pathID(c, "id")
	if parseErr != nil {
		return uuid.Nil, uuid.Nil, false, response.HandleAppError(c, parseErr)
	}

	return userID, deviceID, true, nil
}
