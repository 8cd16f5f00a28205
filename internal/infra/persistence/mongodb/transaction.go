package mongodb

import (
	"context"

	"kampuskart/config"
	domainerrors "kampuskart/internal/domain/errors"
	"kampuskart/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongoTransactionManager runs cascades in a multi-document transaction when
// the deployment supports it (replica sets), and sequentially otherwise.
type mongoTransactionManager struct {
	db           *mongo.Database
	transactions bool
}

type mongoRepositoryFactory struct {
	db      *mongo.Database
	session mongo.Session
}

func (f *mongoRepositoryFactory) NewUserRepository() repository.UserRepository {
	return newUserRepository(f.db, f.session)
}

func (f *mongoRepositoryFactory) NewShopRepository() repository.ShopRepository {
	return newShopRepository(f.db, f.session)
}

func (f *mongoRepositoryFactory) NewProductRepository() repository.ProductRepository {
	return newProductRepository(f.db, f.session)
}

func (f *mongoRepositoryFactory) NewCartRepository() repository.CartRepository {
	return newCartRepository(f.db, f.session)
}

// NewTransactionManager is the constructor for mongoTransactionManager.
func NewTransactionManager(db *mongo.Database, cfg *config.Config) repository.TransactionManager {
	return &mongoTransactionManager{
		db:           db,
		transactions: cfg.Mongo != nil && cfg.Mongo.Transactions,
	}
}

func (tm *mongoTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if !tm.transactions {
		return fn(&mongoRepositoryFactory{db: tm.db})
	}

	session, err := tm.db.Client().StartSession()
	if err != nil {
		return errors.Wrap(err, "failed to start MongoDB session")
	}
	defer session.EndSession(ctx)

	var fnErr error
	_, err = session.WithTransaction(ctx, func(mongo.SessionContext) (any, error) {
		fnErr = fn(&mongoRepositoryFactory{db: tm.db, session: session})

		return nil, fnErr
	})
	if err == nil {
		return nil
	}

	// fnErr is nil when every step succeeded and only the commit failed.
	if fnErr != nil {
		return fnErr
	}

	return domainerrors.NewTransactionError(err)
}
