package memory

import (
	"cmp"
	"context"
	"slices"

	"giftshop/internal/domain/entity"
	"giftshop/internal/domain/repository"

	"github.com/google/uuid"
)

type orderRepository struct {
	store *Store
	tx    *txState
}

// NewOrderRepository returns an OrderRepository whose calls each run in their own transaction.
func NewOrderRepository(store *Store) repository.OrderRepository {
	return &orderRepository{store: store}
}

// Create stages the order in the transaction; it becomes visible to others on commit.
func (r *orderRepository) Create(_ context.Context, order *entity.Order) (err error) {
	t, end := scope(r.store, r.tx)
	defer func() { end(err) }()

	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	now := r.store.now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	if order.UpdatedAt.IsZero() {
		order.UpdatedAt = order.CreatedAt
	}

	t.orders[order.ID] = cloneOrder(order)

	return nil
}

func (r *orderRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	if r.tx != nil {
		if order, ok := r.tx.orders[id]; ok {
			return cloneOrder(order), nil
		}
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	cell, ok := r.store.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}

	return cloneOrder(cell.order), nil
}

func (r *orderRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (_ *entity.Order, err error) {
	t, end := scope(r.store, r.tx)
	defer func() { end(err) }()

	order, err := t.lockOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	return cloneOrder(order), nil
}

func (r *orderRepository) FindByUser(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	seen := make(map[uuid.UUID]bool)
	var orders []*entity.Order

	if r.tx != nil {
		for id, order := range r.tx.orders {
			seen[id] = true
			if order.UserID == userID {
				orders = append(orders, cloneOrder(order))
			}
		}
	}

	r.store.mu.RLock()
	for id, cell := range r.store.orders {
		if !seen[id] && cell.order.UserID == userID {
			orders = append(orders, cloneOrder(cell.order))
		}
	}
	r.store.mu.RUnlock()

	slices.SortFunc(orders, func(a, b *entity.Order) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), compareIDs(a.ID, b.ID))
	})

	if limit <= 0 {
		limit = defaultListLimit
	}

	return page(orders, limit, offset), nil
}

// Update copies the mutable fields onto the transaction's copy of the order.
func (r *orderRepository) Update(ctx context.Context, order *entity.Order) (err error) {
	t, end := scope(r.store, r.tx)
	defer func() { end(err) }()

	staged, err := t.lockOrder(ctx, order.ID)
	if err != nil {
		return err
	}

	staged.Status = order.Status
	staged.SpecialInstructions = order.SpecialInstructions
	staged.Payment.Status = order.Payment.Status
	staged.Payment.TransactionID = order.Payment.TransactionID
	staged.DeliveryPartner = nil
	if order.DeliveryPartner != nil {
		partner := *order.DeliveryPartner
		staged.DeliveryPartner = &partner
	}
	staged.UpdatedAt = order.UpdatedAt
	if staged.UpdatedAt.IsZero() {
		staged.UpdatedAt = r.store.now()
	}

	return nil
}

func (r *orderRepository) AppendTracking(ctx context.Context, orderID uuid.UUID, event entity.TrackingEvent) (err error) {
	t, end := scope(r.store, r.tx)
	defer func() { end(err) }()

	staged, err := t.lockOrder(ctx, orderID)
	if err != nil {
		return err
	}

	staged.Tracking = append(staged.Tracking, event)

	return nil
}
