package repository

import (
	"context"

	"github.com/pkg/errors"
)

// ErrLockContention is returned when a transaction gave up waiting for a row lock held by
// another transaction, or lost a deadlock or serialization conflict.
var ErrLockContention = errors.New("lock contention")

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function must use repositories obtained from txRepoFactory.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
type RepositoryFactory interface {
	// NewGiftRepository returns a GiftRepository bound to the current transaction.
	NewGiftRepository() GiftRepository

	// NewOrderRepository returns an OrderRepository bound to the current transaction.
	NewOrderRepository() OrderRepository

	// NewUserRepository returns a UserRepository bound to the current transaction.
	NewUserRepository() UserRepository

	// NewDeviceRepository returns a DeviceRepository bound to the current transaction.
	NewDeviceRepository() DeviceRepository
}
