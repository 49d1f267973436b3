package impl

import (
	"context"
	"log/slog"

	deliverycontext "giftshop/internal/delivery/context"
	"giftshop/internal/domain/entity"
	domainerrors "giftshop/internal/domain/errors"
	"giftshop/internal/domain/repository"
	"giftshop/internal/domain/service"
	"giftshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultRecommendationLimit = 10

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager repository.TransactionManager
	giftRepo  repository.GiftRepository
	validator service.SchemaValidator
	logger    *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	GiftRepo  repository.GiftRepository
	Validator service.SchemaValidator
	Logger    *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager: params.TxManager,
		giftRepo:  params.GiftRepo,
		validator: params.Validator,
		logger:    params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) ListGifts(ctx context.Context, input *usecase.ListGiftsInput) ([]*entity.Gift, error) {
	if input == nil {
		input = &usecase.ListGiftsInput{}
	}
	if fields := srv.validator.Validate(input); len(fields) > 0 {
		return nil, domainerrors.NewValidationError(fields)
	}

	gifts, err := srv.giftRepo.List(ctx, repository.GiftFilter{
		Gender:      input.Gender,
		MinAge:      input.MinAge,
		MaxAge:      input.MaxAge,
		MaxPrice:    input.MaxPrice,
		Category:    input.Category,
		InStockOnly: input.InStock,
		Sort:        repository.GiftSortNewest,
		Limit:       input.Limit,
		Offset:      input.Offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list gifts")
	}

	return gifts, nil
}

func (srv *catalogService) GetGift(ctx context.Context, giftID uuid.UUID) (*entity.Gift, error) {
	gift, err := srv.giftRepo.FindByID(ctx, giftID)
	if err != nil {
		if errors.Is(err, repository.ErrGiftNotFound) {
			return nil, domainerrors.ErrGiftNotFound
		}

		return nil, errors.Wrap(err, "failed to find gift")
	}

	return gift, nil
}

// Recommend lists in-stock gifts that suit the recipient's age and gender within budget,
// cheapest first and then fastest to deliver.
func (srv *catalogService) Recommend(ctx context.Context, input *usecase.RecommendationInput) ([]*entity.Gift, error) {
	if fields := srv.validator.Validate(input); len(fields) > 0 {
		return nil, domainerrors.NewValidationError(fields)
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultRecommendationLimit
	}

	age := input.Age
	gifts, err := srv.giftRepo.List(ctx, repository.GiftFilter{
		Gender:      input.Gender,
		Age:         &age,
		MaxPrice:    input.Budget,
		InStockOnly: true,
		Sort:        repository.GiftSortPriceAsc,
		Limit:       limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recommendations")
	}

	return gifts, nil
}

// CreateGift adds a gift to the catalog. Availability is derived from the stock count.
func (srv *catalogService) CreateGift(ctx context.Context, input *usecase.CreateGiftInput) (*entity.Gift, error) {
	if fields := srv.validator.Validate(input); len(fields) > 0 {
		return nil, domainerrors.NewValidationError(fields)
	}

	gift := &entity.Gift{
		Name:                     input.Name,
		Description:              input.Description,
		Category:                 input.Category,
		ImageURL:                 input.ImageURL,
		Price:                    input.Price,
		StockCount:               input.StockCount,
		AgeRange:                 entity.AgeRange{Min: input.AgeRange.Min, Max: input.AgeRange.Max},
		Gender:                   input.Gender,
		EstimatedDeliveryMinutes: input.EstimatedDeliveryMinutes,
	}
	gift.SyncAvailability()

	if err := srv.giftRepo.Create(ctx, gift); err != nil {
		return nil, errors.Wrap(err, "failed to create gift")
	}

	srv.log(ctx).Info("Gift created",
		slog.String("gift_id", gift.ID.String()),
		slog.Int("stock_count", gift.StockCount),
	)

	return gift, nil
}

// SetStock overwrites the stock level and returns the gift as stored.
func (srv *catalogService) SetStock(ctx context.Context, giftID uuid.UUID, input *usecase.SetStockInput) (*entity.Gift, error) {
	if fields := srv.validator.Validate(input); len(fields) > 0 {
		return nil, domainerrors.NewValidationError(fields)
	}

	var updated *entity.Gift
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		giftRepo := repoFactory.NewGiftRepository()

		if err := giftRepo.SetStock(ctx, giftID, input.StockCount); err != nil {
			return err
		}

		gift, err := giftRepo.FindByID(ctx, giftID)
		if err != nil {
			return err
		}
		updated = gift

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrGiftNotFound) {
			return nil, domainerrors.ErrGiftNotFound
		}

		return nil, errors.Wrap(err, "failed to set stock")
	}

	srv.log(ctx).Info("Gift stock set",
		slog.String("gift_id", giftID.String()),
		slog.Int("stock_count", updated.StockCount),
	)

	return updated, nil
}
