package repository

import "context"

// TransactionManager groups repository calls into one atomic unit of work.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls everything back otherwise.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory returns repositories bound to the running transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	OrderRepo() OrderRepository
	DriverRepo() DriverRepository
	CityRepo() CityRepository
	DelegateSheetRepo() DelegateSheetRepository
	ProductRepo() ProductRepository
}
