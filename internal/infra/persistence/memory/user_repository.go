package memory

import (
	"context"
	"strings"

	"giftshop/internal/domain/entity"
	"giftshop/internal/domain/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	store *Store
	tx    *txState
}

// NewUserRepository returns a UserRepository whose calls each run in their own transaction.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) Create(_ context.Context, user *entity.User) (err error) {
	t, end := scope(r.store, r.tx)
	defer func() { end(err) }()

	user.Email = normalizeEmail(user.Email)

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := r.store.now()
	user.CreatedAt = now
	user.UpdatedAt = now

	r.store.users[user.ID] = cloneUser(user)
	id := user.ID
	t.journal(func() { delete(r.store.users, id) })

	return nil
}

func (r *userRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(user), nil
}

func (r *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	email = normalizeEmail(email)

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, user := range r.store.users {
		if user.Email == email {
			return cloneUser(user), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
