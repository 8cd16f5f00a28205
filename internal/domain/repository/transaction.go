package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to group writes without depending on a specific driver.
type TransactionManager interface {
	// Execute runs fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to the current transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewShopRepository() ShopRepository
	NewProductRepository() ProductRepository
	NewCartRepository() CartRepository
}
