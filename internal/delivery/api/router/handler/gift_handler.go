package handler

import (
	"log/slog"
	"net/http"

	"giftshop/internal/delivery/api/response"
	"giftshop/internal/domain/entity"
	"giftshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GiftHandlerParams holds dependencies for GiftHandler, injected by Fx.
type GiftHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// GiftHandler serves the public catalog and the admin stock endpoints.
type GiftHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewGiftHandler is the constructor for GiftHandler
func NewGiftHandler(params GiftHandlerParams) *GiftHandler {
	return &GiftHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListGifts handles catalog listing with optional filters.
func (h *GiftHandler) ListGifts(c echo.Context) error {
	var (
		input  usecase.ListGiftsInput
		gender string
		err    error
	)

	err = echo.QueryParamsBinder(c).
		String("gender", &gender).
		String("category", &input.Category).
		Bool("inStock", &input.InStock).
		Int("limit", &input.Limit).
		Int("offset", &input.Offset).
		BindError()
	if err != nil {
		return response.HandleAppError(c, queryError(err))
	}
	input.Gender = entity.Gender(gender)

	if input.MinAge, err = optionalIntQuery(c, "minAge"); err != nil {
		return response.HandleAppError(c, err)
	}
	if input.MaxAge, err = optionalIntQuery(c, "maxAge"); err != nil {
		return response.HandleAppError(c, err)
	}
	if input.MaxPrice, err = optionalDecimalQuery(c, "maxPrice"); err != nil {
		return response.HandleAppError(c, err)
	}

	gifts, err := h.catalogUC.ListGifts(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nonNil(gifts))
}

// Recommend handles gift recommendations for a recipient.
func (h *GiftHandler) Recommend(c echo.Context) error {
	var (
		input  usecase.RecommendationInput
		gender string
		err    error
	)

	err = echo.QueryParamsBinder(c).
		MustInt("age", &input.Age).
		String("gender", &gender).
		Int("limit", &input.Limit).
		BindError()
	if err != nil {
		return response.HandleAppError(c, queryError(err))
	}
	input.Gender = entity.Gender(gender)

	if input.Budget, err = optionalDecimalQuery(c, "budget"); err != nil {
		return response.HandleAppError(c, err)
	}

	gifts, err := h.catalogUC.Recommend(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nonNil(gifts))
}

// GetGift handles a single catalog lookup.
func (h *GiftHandler) GetGift(c echo.Context) error {
	giftID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	gift, err := h.catalogUC.GetGift(c.Request().Context(), giftID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, gift)
}

// CreateGift handles the admin catalog insert.
func (h *GiftHandler) CreateGift(c echo.Context) error {
	var input usecase.CreateGiftInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid gift input")
	}

	if err := c.Validate(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	gift, err := h.catalogUC.CreateGift(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, gift)
}

// SetStock handles the admin restock.
func (h *GiftHandler) SetStock(c echo.Context) error {
	giftID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.SetStockInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid stock input")
	}

	gift, err := h.catalogUC.SetStock(c.Request().Context(), giftID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.logger.Info("Stock set by admin",
		slog.String("gift_id", giftID.String()),
		slog.Int("stock_count", gift.StockCount),
	)

	return response.Success(c, http.StatusOK, gift)
}
