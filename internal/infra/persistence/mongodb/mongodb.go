// Package mongodb implements the persistence layer on MongoDB.
package mongodb

import (
	"context"
	"log/slog"
	"time"

	"kampuskart/config"
	"kampuskart/internal/domain/lifecycle"
	"kampuskart/internal/errors"

	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

const (
	usersCollection    = "users"
	shopsCollection    = "shops"
	productsCollection = "products"
	cartsCollection    = "carts"

	defaultSlowCommandThreshold = 200 * time.Millisecond
)

// Params defines the required parameters.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to MongoDB and returns the configured database. Indexes are
// ensured on start and the client disconnects on stop.
func New(params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo.uri is required when database.driver is mongo")
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetMonitor(newCommandMonitor(params.Logger, params.Config))
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout)
	}
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}
	if cfg.MinPoolSize > 0 {
		opts.SetMinPoolSize(cfg.MinPoolSize)
	}

	connectCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	database := client.Database(cfg.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			return EnsureIndexes(ctx, database)
		},
		OnStop: func(stopCtx context.Context) error {
			return client.Disconnect(stopCtx)
		},
	})

	return database, nil
}

// newCommandMonitor logs failed commands, and slow ones at warn level.
func newCommandMonitor(logger *slog.Logger, cfg *config.Config) *event.CommandMonitor {
	threshold := cfg.Database.SlowQueryThreshold
	if threshold <= 0 {
		threshold = defaultSlowCommandThreshold
	}

	return &event.CommandMonitor{
		Succeeded: func(ctx context.Context, evt *event.CommandSucceededEvent) {
			switch {
			case evt.Duration >= threshold:
				logger.WarnContext(ctx, "Slow MongoDB command",
					slog.String("command", evt.CommandName),
					slog.Duration("elapsed", evt.Duration),
					slog.Duration("threshold", threshold),
				)
			case cfg.Env.Debug:
				logger.DebugContext(ctx, "MongoDB command",
					slog.String("command", evt.CommandName),
					slog.Duration("elapsed", evt.Duration),
				)
			}
		},
		Failed: func(ctx context.Context, evt *event.CommandFailedEvent) {
			logger.ErrorContext(ctx, "MongoDB command failed",
				slog.String("command", evt.CommandName),
				slog.Duration("elapsed", evt.Duration),
				slog.String("failure", evt.Failure),
			)
		},
	}
}

// EnsureIndexes creates the unique and lookup indexes the repositories rely on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bsonKeys("email", 1), Options: options.Index().SetUnique(true)},
			{Keys: bsonKeys("seller_status", 1, "created_at", -1)},
		},
		shopsCollection: {
			{Keys: bsonKeys("owner_id", 1), Options: options.Index().SetUnique(true)},
		},
		productsCollection: {
			{Keys: bsonKeys("shop_id", 1)},
			{Keys: bsonKeys("created_at", -1)},
		},
		cartsCollection: {
			{Keys: bsonKeys("buyer_id", 1), Options: options.Index().SetUnique(true)},
		},
	}

	for name, models := range indexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return errors.Wrapf(err, "failed to create indexes on %s", name)
		}
	}

	return nil
}
