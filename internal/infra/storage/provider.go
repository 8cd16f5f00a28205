package storage

import (
	"context"
	"log/slog"

	"kampuskart/config"
	"kampuskart/internal/domain/service"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
)

// Params holds dependencies for ObjectStorage, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	// Mongo is nil unless the document store is in use.
	Mongo *mongo.Database `optional:"true"`
}

// New selects the image store named by blob.driver.
func New(params Params) (service.ObjectStorage, error) {
	cfg := params.Config.Blob

	switch cfg.Driver {
	case config.BlobDriverGridFS:
		if params.Mongo == nil {
			return nil, errors.New("blob.driver gridfs requires database.driver mongo")
		}

		params.Logger.Info("Using GridFS image storage", slog.String("bucket", cfg.BucketName))

		return NewGridFSStorage(params.Mongo, cfg.BucketName)

	case config.BlobDriverBucket:
		if cfg.URL == "" {
			return nil, errors.New("blob.url is required for the bucket driver")
		}

		bucket, err := OpenBucket(params.Ctx, cfg.URL)
		if err != nil {
			return nil, err
		}

		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return errors.WithStack(bucket.Close())
			},
		})

		params.Logger.Info("Using bucket image storage", slog.String("url", cfg.URL))

		return NewBucketStorage(bucket), nil

	default:
		return nil, errors.Errorf("unknown blob driver: %s", cfg.Driver)
	}
}
