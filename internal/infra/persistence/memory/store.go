// Package memory is an in-process implementation of the repositories and the transaction manager.
// Gifts and orders are guarded by per-record lock cells held until the owning transaction ends;
// there is no store-wide transaction lock.
package memory

import (
	"bytes"
	"context"
	"slices"
	"sync"
	"time"

	"giftshop/internal/domain/entity"
	"giftshop/internal/domain/repository"
	"giftshop/internal/errors"

	"github.com/google/uuid"
)

// Store holds all records. mu only guards map access and record copies; it is never held
// while waiting for a lock cell.
type Store struct {
	mu      sync.RWMutex
	gifts   map[uuid.UUID]*giftCell
	orders  map[uuid.UUID]*orderCell
	users   map[uuid.UUID]*entity.User
	devices map[uuid.UUID]*entity.UserDevice
	now     func() time.Time
}

type giftCell struct {
	lock chan struct{}
	gift entity.Gift
}

type orderCell struct {
	lock  chan struct{}
	order *entity.Order
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		gifts:   make(map[uuid.UUID]*giftCell),
		orders:  make(map[uuid.UUID]*orderCell),
		users:   make(map[uuid.UUID]*entity.User),
		devices: make(map[uuid.UUID]*entity.UserDevice),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// NewTransactionManager exposes the store as a repository.TransactionManager.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return store
}

// Execute runs fn in a transaction. Gift, user and device writes are applied immediately and
// journaled for rollback; order writes stay private to the transaction until commit.
func (s *Store) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}

	t := s.begin()

	defer func() {
		if r := recover(); r != nil {
			t.rollback()
			panic(r)
		}
	}()

	if err := fn(&repositoryFactory{tx: t}); err != nil {
		t.rollback()

		return err
	}

	if err := ctx.Err(); err != nil {
		t.rollback()

		return errors.Wrap(err, "failed to commit transaction")
	}

	t.commit()

	return nil
}

type repositoryFactory struct {
	tx *txState
}

func (f *repositoryFactory) NewGiftRepository() repository.GiftRepository {
	return &giftRepository{store: f.tx.store, tx: f.tx}
}

func (f *repositoryFactory) NewOrderRepository() repository.OrderRepository {
	return &orderRepository{store: f.tx.store, tx: f.tx}
}

func (f *repositoryFactory) NewUserRepository() repository.UserRepository {
	return &userRepository{store: f.tx.store, tx: f.tx}
}

func (f *repositoryFactory) NewDeviceRepository() repository.DeviceRepository {
	return &deviceRepository{store: f.tx.store, tx: f.tx}
}

// txState is one transaction: the lock cells it holds, its undo journal and its private order copies.
type txState struct {
	store     *Store
	held      []chan struct{}
	heldGifts map[uuid.UUID]bool
	undo      []func()
	orders    map[uuid.UUID]*entity.Order
}

func (s *Store) begin() *txState {
	return &txState{
		store:     s,
		heldGifts: make(map[uuid.UUID]bool),
		orders:    make(map[uuid.UUID]*entity.Order),
	}
}

// scope returns the caller's transaction, or a single-statement one that commits when the
// returned end func sees a nil error.
func scope(store *Store, tx *txState) (t *txState, end func(err error)) {
	if tx != nil {
		return tx, func(error) {}
	}

	t = store.begin()

	return t, func(err error) {
		if err != nil {
			t.rollback()

			return
		}
		t.commit()
	}
}

func (t *txState) commit() {
	t.store.mu.Lock()
	for id, order := range t.orders {
		if cell, ok := t.store.orders[id]; ok {
			cell.order = order
			continue
		}
		t.store.orders[id] = &orderCell{lock: make(chan struct{}, 1), order: order}
	}
	t.store.mu.Unlock()

	t.release()
}

func (t *txState) rollback() {
	t.store.mu.Lock()
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i]()
	}
	t.store.mu.Unlock()

	t.release()
}

func (t *txState) release() {
	for _, lock := range t.held {
		<-lock
	}
	t.held = nil
	t.undo = nil
	t.orders = nil
}

// journal records how to revert a write. Undo funcs run with store.mu held.
func (t *txState) journal(undo func()) {
	t.undo = append(t.undo, undo)
}

func acquire(ctx context.Context, lock chan struct{}) error {
	select {
	case lock <- struct{}{}:
		return nil
	case <-ctx.Done():
		return errors.Join(repository.ErrLockContention, errors.Wrap(ctx.Err(), "timed out waiting for row lock"))
	}
}

// lockGift takes the gift's lock cell for the rest of the transaction.
func (t *txState) lockGift(ctx context.Context, id uuid.UUID) (*giftCell, error) {
	t.store.mu.RLock()
	cell, ok := t.store.gifts[id]
	t.store.mu.RUnlock()
	if !ok {
		return nil, repository.ErrGiftNotFound
	}

	if t.heldGifts[id] {
		return cell, nil
	}

	if err := acquire(ctx, cell.lock); err != nil {
		return nil, err
	}
	t.heldGifts[id] = true
	t.held = append(t.held, cell.lock)

	return cell, nil
}

// lockOrder takes a committed order's lock cell and gives the transaction its private copy.
func (t *txState) lockOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	if order, ok := t.orders[id]; ok {
		return order, nil
	}

	t.store.mu.RLock()
	cell, ok := t.store.orders[id]
	t.store.mu.RUnlock()
	if !ok {
		return nil, repository.ErrOrderNotFound
	}

	if err := acquire(ctx, cell.lock); err != nil {
		return nil, err
	}
	t.held = append(t.held, cell.lock)

	t.store.mu.RLock()
	order := cloneOrder(cell.order)
	t.store.mu.RUnlock()
	t.orders[id] = order

	return order, nil
}

func compareIDs(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}

func sortedUnique(ids []uuid.UUID) []uuid.UUID {
	sorted := slices.Clone(ids)
	slices.SortFunc(sorted, compareIDs)

	return slices.Compact(sorted)
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[max(offset, 0):]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}

	return items
}

func cloneOrder(o *entity.Order) *entity.Order {
	if o == nil {
		return nil
	}

	cloned := *o
	cloned.Items = slices.Clone(o.Items)
	cloned.Tracking = slices.Clone(o.Tracking)
	if o.DeliveryPartner != nil {
		partner := *o.DeliveryPartner
		cloned.DeliveryPartner = &partner
	}

	return &cloned
}

func cloneUser(u *entity.User) *entity.User {
	if u == nil {
		return nil
	}

	cloned := *u
	cloned.Roles = slices.Clone(u.Roles)

	return &cloned
}
