package postgres

import (
	"context"

	"courier/internal/domain/repository"
	"courier/internal/errors"

	"gorm.io/gorm"
)

type transactionManager struct {
	db *gorm.DB
}

// NewTransactionManager runs use-case units of work on the primary database.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &transactionManager{db: db}
}

// Execute commits when fn returns nil and rolls back on an error or panic.
// fn's own error is returned unwrapped so callers can match domain errors.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var fnErr error

	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})

	switch {
	case err == nil:
		return nil
	case fnErr != nil:
		return fnErr
	default:
		return errors.Wrap(err, "transaction")
	}
}

// txRepositories hands out repositories bound to one transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) UserRepo() repository.UserRepository { return NewUserRepository(r.tx) }

func (r txRepositories) OrderRepo() repository.OrderRepository { return NewOrderRepository(r.tx) }

func (r txRepositories) DriverRepo() repository.DriverRepository { return NewDriverRepository(r.tx) }

func (r txRepositories) CityRepo() repository.CityRepository { return NewCityRepository(r.tx) }

func (r txRepositories) DelegateSheetRepo() repository.DelegateSheetRepository {
	return NewDelegateSheetRepository(r.tx)
}

func (r txRepositories) ProductRepo() repository.ProductRepository { return NewProductRepository(r.tx) }
