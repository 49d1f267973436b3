package memory

import (
	"cmp"
	"context"
	"slices"

	"giftshop/internal/domain/entity"
	"giftshop/internal/domain/repository"
	"giftshop/internal/errors"

	"github.com/google/uuid"
)

const defaultListLimit = 20

type giftRepository struct {
	store *Store
	tx    *txState
}

// NewGiftRepository returns a GiftRepository whose calls each run in their own transaction.
func NewGiftRepository(store *Store) repository.GiftRepository {
	return &giftRepository{store: store}
}

func (r *giftRepository) Create(_ context.Context, gift *entity.Gift) (err error) {
	t, end := scope(r.store, r.tx)
	defer func() { end(err) }()

	if gift.ID == uuid.Nil {
		gift.ID = uuid.New()
	}
	now := r.store.now()
	if gift.CreatedAt.IsZero() {
		gift.CreatedAt = now
	}
	gift.UpdatedAt = now
	gift.SyncAvailability()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.gifts[gift.ID]; exists {
		return errors.Errorf("gift %s already exists", gift.ID)
	}

	// The new cell starts locked by the creating transaction.
	cell := &giftCell{lock: make(chan struct{}, 1), gift: *gift}
	cell.lock <- struct{}{}
	t.held = append(t.held, cell.lock)
	t.heldGifts[gift.ID] = true

	r.store.gifts[gift.ID] = cell
	id := gift.ID
	t.journal(func() { delete(r.store.gifts, id) })

	return nil
}

func (r *giftRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Gift, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	cell, ok := r.store.gifts[id]
	if !ok {
		return nil, repository.ErrGiftNotFound
	}
	gift := cell.gift

	return &gift, nil
}

// FindByIDsForUpdate takes the lock cells in ascending ID order.
func (r *giftRepository) FindByIDsForUpdate(ctx context.Context, ids []uuid.UUID) (_ []*entity.Gift, err error) {
	t, end := scope(r.store, r.tx)
	defer func() { end(err) }()

	gifts := make([]*entity.Gift, 0, len(ids))
	for _, id := range sortedUnique(ids) {
		cell, err := t.lockGift(ctx, id)
		if errors.Is(err, repository.ErrGiftNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}

		r.store.mu.RLock()
		gift := cell.gift
		r.store.mu.RUnlock()
		gifts = append(gifts, &gift)
	}

	return gifts, nil
}

func (r *giftRepository) List(_ context.Context, filter repository.GiftFilter) ([]*entity.Gift, error) {
	r.store.mu.RLock()
	gifts := make([]*entity.Gift, 0, len(r.store.gifts))
	for _, cell := range r.store.gifts {
		if matchesFilter(&cell.gift, filter) {
			gift := cell.gift
			gifts = append(gifts, &gift)
		}
	}
	r.store.mu.RUnlock()

	switch filter.Sort {
	case repository.GiftSortPriceAsc:
		slices.SortFunc(gifts, func(a, b *entity.Gift) int {
			return cmp.Or(
				a.Price.Cmp(b.Price),
				cmp.Compare(a.EstimatedDeliveryMinutes, b.EstimatedDeliveryMinutes),
				compareIDs(a.ID, b.ID),
			)
		})
	default:
		slices.SortFunc(gifts, func(a, b *entity.Gift) int {
			return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), compareIDs(a.ID, b.ID))
		})
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	return page(gifts, limit, filter.Offset), nil
}

func matchesFilter(gift *entity.Gift, filter repository.GiftFilter) bool {
	switch {
	case !gift.Gender.Matches(filter.Gender):
		return false
	case filter.Age != nil && !gift.AgeRange.Contains(*filter.Age):
		return false
	case filter.MinAge != nil && gift.AgeRange.Max < *filter.MinAge:
		return false
	case filter.MaxAge != nil && gift.AgeRange.Min > *filter.MaxAge:
		return false
	case filter.MaxPrice != nil && gift.Price.GreaterThan(*filter.MaxPrice):
		return false
	case filter.Category != "" && gift.Category != filter.Category:
		return false
	case filter.InStockOnly && !gift.InStock:
		return false
	default:
		return true
	}
}

func (r *giftRepository) ReserveStock(ctx context.Context, id uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return errors.Errorf("reserve quantity must be positive, got %d", quantity)
	}

	return r.mutate(ctx, id, func(gift *entity.Gift) error {
		if !gift.Reserve(quantity) {
			return repository.ErrInsufficientStock
		}

		return nil
	})
}

func (r *giftRepository) ReleaseStock(ctx context.Context, id uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return errors.Errorf("release quantity must be positive, got %d", quantity)
	}

	return r.mutate(ctx, id, func(gift *entity.Gift) error {
		gift.Release(quantity)

		return nil
	})
}

func (r *giftRepository) SetStock(ctx context.Context, id uuid.UUID, count int) error {
	return r.mutate(ctx, id, func(gift *entity.Gift) error {
		gift.SetStock(count)

		return nil
	})
}

// mutate applies fn to the locked gift and journals the previous value.
func (r *giftRepository) mutate(ctx context.Context, id uuid.UUID, fn func(gift *entity.Gift) error) (err error) {
	t, end := scope(r.store, r.tx)
	defer func() { end(err) }()

	cell, err := t.lockGift(ctx, id)
	if err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	updated := cell.gift
	if err := fn(&updated); err != nil {
		return err
	}
	updated.UpdatedAt = r.store.now()

	previous := cell.gift
	cell.gift = updated
	t.journal(func() { cell.gift = previous })

	return nil
}
