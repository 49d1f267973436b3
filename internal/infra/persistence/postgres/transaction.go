// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"
	"time"

	"giftshop/internal/domain/repository"
	"giftshop/internal/errors"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// defaultLockTimeout bounds how long a statement inside a transaction waits for a row lock.
const defaultLockTimeout = 5 * time.Second

type gormTransactionManager struct {
	db          *gorm.DB
	lockTimeout time.Duration
}

// gormRepositoryFactory hands out repositories bound to one open transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) NewGiftRepository() repository.GiftRepository {
	return NewGiftRepository(f.tx)
}

func (f *gormRepositoryFactory) NewOrderRepository() repository.OrderRepository {
	return NewOrderRepository(f.tx)
}

func (f *gormRepositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *gormRepositoryFactory) NewDeviceRepository() repository.DeviceRepository {
	return NewDeviceRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db, lockTimeout: defaultLockTimeout}
}

// Execute runs fn inside one transaction on the primary. Row lock waits are capped by
// lock_timeout, and contention failures are reported as repository.ErrLockContention.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) (err error) {
	tx := tm.db.WithContext(ctx).Clauses(dbresolver.Write).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// A panic inside fn still rolls the transaction back before propagating.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	// SET does not accept bind parameters.
	if err := tx.Exec(fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", tm.lockTimeout.Milliseconds())).Error; err != nil {
		tx.Rollback()

		return errors.Wrap(err, "failed to set lock timeout")
	}

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Join(err, errors.Wrap(rbErr, "transaction rollback failed"))
		}

		return classifyTxError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return classifyTxError(errors.Wrap(err, "failed to commit transaction"))
	}

	return nil
}

// classifyTxError tags lock timeouts, deadlocks and serialization failures; business errors pass through untouched.
func classifyTxError(err error) error {
	if isLockContention(err) {
		return errors.Join(repository.ErrLockContention, err)
	}

	return err
}
