package postgres

import (
	"bytes"
	"context"
	"slices"

	"giftshop/internal/domain/entity"
	domainerrors "giftshop/internal/domain/errors"
	"giftshop/internal/domain/repository"
	"giftshop/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

const defaultGiftListLimit = 20

// giftRepository implements the repository.GiftRepository interface.
type giftRepository struct {
	db *gorm.DB
}

// NewGiftRepository is the constructor for giftRepository.
func NewGiftRepository(db *gorm.DB) repository.GiftRepository {
	return &giftRepository{
		db: db,
	}
}

// Create persists a new gift.
func (repo *giftRepository) Create(ctx context.Context, gift *entity.Gift) error {
	gift.SyncAvailability()
	giftM := fromGiftDomain(gift)

	if err := repo.db.WithContext(ctx).Create(giftM).Error; err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("gift violates catalog constraints")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create gift")
	}

	gift.ID = giftM.ID
	gift.CreatedAt = giftM.CreatedAt
	gift.UpdatedAt = giftM.UpdatedAt

	return nil
}

// FindByID retrieves a gift by its unique ID.
func (repo *giftRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Gift, error) {
	var giftM model.GiftModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&giftM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGiftNotFound
		}

		return nil, errors.Wrap(err, "failed to find gift by ID")
	}

	return toGiftDomain(&giftM), nil
}

// FindByIDsForUpdate loads the gifts on the primary with SELECT ... FOR UPDATE in ascending ID order,
// so concurrent placements touching the same gifts always lock them in the same sequence.
func (repo *giftRepository) FindByIDsForUpdate(ctx context.Context, ids []uuid.UUID) ([]*entity.Gift, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	sorted := slices.Clone(ids)
	slices.SortFunc(sorted, func(a, b uuid.UUID) int {
		return bytes.Compare(a[:], b[:])
	})
	sorted = slices.Compact(sorted)

	var giftModels []*model.GiftModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write, clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", sorted).
		Order("id ASC").
		Find(&giftModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to lock gifts")
	}

	gifts := make([]*entity.Gift, 0, len(giftModels))
	for _, giftM := range giftModels {
		gifts = append(gifts, toGiftDomain(giftM))
	}

	return gifts, nil
}

// List retrieves gifts matching the filter.
func (repo *giftRepository) List(ctx context.Context, filter repository.GiftFilter) ([]*entity.Gift, error) {
	query := repo.db.WithContext(ctx).Model(&model.GiftModel{})

	if filter.Gender != "" {
		query = query.Where("gender IN ?", []string{filter.Gender.String(), entity.GenderUnisex.String()})
	}
	if filter.Age != nil {
		query = query.Where("age_min <= ? AND age_max >= ?", *filter.Age, *filter.Age)
	}
	if filter.MinAge != nil {
		query = query.Where("age_max >= ?", *filter.MinAge)
	}
	if filter.MaxAge != nil {
		query = query.Where("age_min <= ?", *filter.MaxAge)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.InStockOnly {
		query = query.Where("in_stock = ?", true)
	}

	switch filter.Sort {
	case repository.GiftSortPriceAsc:
		query = query.Order("price ASC").Order("estimated_delivery_minutes ASC")
	default:
		query = query.Order("created_at DESC")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultGiftListLimit
	}

	var giftModels []*model.GiftModel
	if err := query.Order("id ASC").Limit(limit).Offset(filter.Offset).Find(&giftModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list gifts")
	}

	gifts := make([]*entity.Gift, 0, len(giftModels))
	for _, giftM := range giftModels {
		gifts = append(gifts, toGiftDomain(giftM))
	}

	return gifts, nil
}

// ReserveStock is a single conditional UPDATE: the stock_count >= quantity guard and the decrement
// happen in one statement, and in_stock is re-derived from the pre-update stock_count.
func (repo *giftRepository) ReserveStock(ctx context.Context, id uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return errors.Errorf("reserve quantity must be positive, got %d", quantity)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.GiftModel{}).
		Where("id = ? AND stock_count >= ?", id, quantity).
		Updates(map[string]any{
			"stock_count": gorm.Expr("stock_count - ?", quantity),
			"in_stock":    gorm.Expr("stock_count - ? > 0", quantity),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to reserve stock")
	}

	if result.RowsAffected == 0 {
		return repo.missingOrInsufficient(ctx, id)
	}

	return nil
}

// ReleaseStock returns quantity units to the gift.
func (repo *giftRepository) ReleaseStock(ctx context.Context, id uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return errors.Errorf("release quantity must be positive, got %d", quantity)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.GiftModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"stock_count": gorm.Expr("stock_count + ?", quantity),
			"in_stock":    gorm.Expr("stock_count + ? > 0", quantity),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to release stock")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGiftNotFound
	}

	return nil
}

// SetStock overwrites the stock level.
func (repo *giftRepository) SetStock(ctx context.Context, id uuid.UUID, count int) error {
	count = max(count, 0)

	result := repo.db.WithContext(ctx).
		Model(&model.GiftModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"stock_count": count,
			"in_stock":    count > 0,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set stock")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGiftNotFound
	}

	return nil
}

// missingOrInsufficient tells apart the two reasons a conditional reservation can match no row.
func (repo *giftRepository) missingOrInsufficient(ctx context.Context, id uuid.UUID) error {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.GiftModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check gift existence")
	}

	if count == 0 {
		return repository.ErrGiftNotFound
	}

	return repository.ErrInsufficientStock
}

// --- Mapper Functions ---

// toGiftDomain converts a GORM GiftModel to a domain Gift entity.
func toGiftDomain(data *model.GiftModel) *entity.Gift {
	if data == nil {
		return nil
	}

	return &entity.Gift{
		ID:                       data.ID,
		Name:                     data.Name,
		Description:              data.Description,
		Category:                 data.Category,
		ImageURL:                 data.ImageURL,
		Price:                    data.Price,
		InStock:                  data.InStock,
		StockCount:               data.StockCount,
		AgeRange:                 entity.AgeRange{Min: data.AgeMin, Max: data.AgeMax},
		Gender:                   entity.Gender(data.Gender),
		EstimatedDeliveryMinutes: data.EstimatedDeliveryMinutes,
		CreatedAt:                data.CreatedAt,
		UpdatedAt:                data.UpdatedAt,
	}
}

// fromGiftDomain converts a domain Gift entity to a GORM GiftModel.
func fromGiftDomain(data *entity.Gift) *model.GiftModel {
	if data == nil {
		return nil
	}

	return &model.GiftModel{
		ID:                       data.ID,
		Name:                     data.Name,
		Description:              data.Description,
		Category:                 data.Category,
		ImageURL:                 data.ImageURL,
		Price:                    data.Price,
		InStock:                  data.InStock,
		StockCount:               data.StockCount,
		AgeMin:                   data.AgeRange.Min,
		AgeMax:                   data.AgeRange.Max,
		Gender:                   data.Gender.String(),
		EstimatedDeliveryMinutes: data.EstimatedDeliveryMinutes,
		CreatedAt:                data.CreatedAt,
		UpdatedAt:                data.UpdatedAt,
	}
}
