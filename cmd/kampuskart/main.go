package main

import (
	"context"
	"log/slog"
	"os"

	"kampuskart/config"
	"kampuskart/internal/delivery"
	"kampuskart/internal/delivery/api"
	"kampuskart/internal/delivery/api/middleware"
	"kampuskart/internal/delivery/api/router/handler"
	"kampuskart/internal/domain/service"
	"kampuskart/internal/infra/auth"
	logs "kampuskart/internal/infra/log"
	"kampuskart/internal/infra/persistence"
	"kampuskart/internal/infra/pubsub"
	"kampuskart/internal/infra/qrcode"
	"kampuskart/internal/infra/storage"
	"kampuskart/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		persistence.New,
		storage.New,
		pubsub.NewEventPublisher,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newQRCodeService,
		),
	)
}

// newQRCodeService builds the share code renderer for shop pages.
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.BaseURL, cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewImageService,
			impl.NewAuthService,
			impl.NewSellerApplicationService,
			impl.NewAdminService,
			impl.NewShopService,
			impl.NewProductService,
			impl.NewCartService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewSellerApplicationHandler,
			handler.NewAdminHandler,
			handler.NewShopHandler,
			handler.NewProductHandler,
			handler.NewCartHandler,
			handler.NewImageHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
