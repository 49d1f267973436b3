package handler

import (
	"net/http"
	"strconv"

	"giftshop/internal/delivery/api/response"
	domainerrors "giftshop/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.NewFieldError(name, "must be a valid UUID")
	}

	return id, nil
}

func optionalIntQuery(c echo.Context, name string) (*int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, domainerrors.NewFieldError(name, "must be an integer")
	}

	return &value, nil
}

func optionalDecimalQuery(c echo.Context, name string) (*decimal.Decimal, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, domainerrors.NewFieldError(name, "must be a decimal number")
	}

	return &value, nil
}

// queryError turns echo's value binder failures into a field error on the offending parameter.
func queryError(err error) error {
	var bindErr *echo.BindingError
	if errors.As(err, &bindErr) {
		return domainerrors.NewFieldError(bindErr.Field, "has an invalid value")
	}

	return err
}

// nonNil keeps empty result sets serializing as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}

	return items
}
