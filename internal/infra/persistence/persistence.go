// Package persistence selects the repository backend named by database.driver.
package persistence

import (
	"log/slog"

	"kampuskart/config"
	"kampuskart/internal/domain/repository"
	"kampuskart/internal/infra/persistence/mongodb"
	"kampuskart/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
)

// Params holds dependencies for the repositories, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the full persistence surface handed to the usecases.
type Repositories struct {
	fx.Out

	UserRepo    repository.UserRepository
	ShopRepo    repository.ShopRepository
	ProductRepo repository.ProductRepository
	CartRepo    repository.CartRepository
	TxManager   repository.TransactionManager

	// Mongo is nil for the relational backend. GridFS storage needs it.
	Mongo *mongo.Database
}

// New opens the configured database and builds its repositories.
func New(params Params) (Repositories, error) {
	switch params.Config.Database.Driver {
	case config.DatabaseDriverMongo:
		db, err := mongodb.New(mongodb.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		params.Logger.Info("Using MongoDB persistence", slog.String("database", db.Name()))

		return Repositories{
			UserRepo:    mongodb.NewUserRepository(db),
			ShopRepo:    mongodb.NewShopRepository(db),
			ProductRepo: mongodb.NewProductRepository(db),
			CartRepo:    mongodb.NewCartRepository(db),
			TxManager:   mongodb.NewTransactionManager(db, params.Config),
			Mongo:       db,
		}, nil

	case config.DatabaseDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		params.Logger.Info("Using PostgreSQL persistence")

		return Repositories{
			UserRepo:    postgres.NewUserRepository(db),
			ShopRepo:    postgres.NewShopRepository(db),
			ProductRepo: postgres.NewProductRepository(db),
			CartRepo:    postgres.NewCartRepository(db),
			TxManager:   postgres.NewTransactionManager(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown database driver: %s", params.Config.Database.Driver)
	}
}
