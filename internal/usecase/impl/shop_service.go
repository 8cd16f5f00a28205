package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "kampuskart/internal/delivery/context"
	"kampuskart/internal/domain/entity"
	domainerrors "kampuskart/internal/domain/errors"
	"kampuskart/internal/domain/repository"
	"kampuskart/internal/domain/service"
	"kampuskart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type shopService struct {
	txManager repository.TransactionManager
	shopRepo  repository.ShopRepository
	images    usecase.ImageUsecase
	qrCodes   service.QRCodeService
	publisher service.EventPublisher
	now       func() time.Time
	logger    *slog.Logger
}

// ShopServiceParams holds dependencies for ShopService, injected by Fx.
type ShopServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	ShopRepo  repository.ShopRepository
	Images    usecase.ImageUsecase
	QRCodes   service.QRCodeService
	Publisher service.EventPublisher `optional:"true"`
	Logger    *slog.Logger
}

// NewShopService creates a new shop service.
func NewShopService(params ShopServiceParams) usecase.ShopUsecase {
	return &shopService{
		txManager: params.TxManager,
		shopRepo:  params.ShopRepo,
		images:    params.Images,
		qrCodes:   params.QRCodes,
		publisher: params.Publisher,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *shopService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateShop opens the owner's single shop.
func (srv *shopService) CreateShop(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateShopInput) (*entity.Shop, error) {
	now := srv.now()
	shop := &entity.Shop{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := shop.Validate(); err != nil {
		return nil, err
	}

	_, err := srv.shopRepo.FindByOwner(ctx, ownerID)
	if err == nil {
		return nil, domainerrors.ErrShopAlreadyExists
	}
	if !errors.Is(err, domainerrors.ErrShopNotFound) {
		return nil, errors.Wrap(err, "failed to find shop")
	}

	if input.Logo != nil {
		ref, err := srv.images.Store(ctx, input.Logo)
		if err != nil {
			return nil, err
		}
		shop.LogoRef = ref
	}

	if err := srv.shopRepo.Create(ctx, shop); err != nil {
		srv.images.Discard(ctx, shop.LogoRef)

		return nil, errors.Wrap(err, "failed to create shop")
	}

	srv.log(ctx).Info("Shop created", slog.String("shopID", shop.ID.String()), slog.String("ownerID", ownerID.String()))

	return shop, nil
}

// GetMyShop returns the owner's shop.
func (srv *shopService) GetMyShop(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error) {
	shop, err := srv.shopRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shop")
	}

	return shop, nil
}

// UpdateMyShop applies the given changes to the owner's shop.
func (srv *shopService) UpdateMyShop(ctx context.Context, ownerID uuid.UUID, input *usecase.UpdateShopInput) (*entity.Shop, error) {
	shop, err := srv.shopRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shop")
	}

	if input.Name != nil {
		shop.Name = *input.Name
	}
	if input.Description != nil {
		shop.Description = *input.Description
	}

	if err := shop.Validate(); err != nil {
		return nil, err
	}

	previousLogo := shop.LogoRef
	if input.Logo != nil {
		ref, err := srv.images.Store(ctx, input.Logo)
		if err != nil {
			return nil, err
		}
		shop.LogoRef = ref
	}

	shop.UpdatedAt = srv.now()

	if err := srv.shopRepo.Update(ctx, shop); err != nil {
		if shop.LogoRef != previousLogo {
			srv.images.Discard(ctx, shop.LogoRef)
		}

		return nil, errors.Wrap(err, "failed to update shop")
	}

	if shop.LogoRef != previousLogo {
		srv.images.Discard(ctx, previousLogo)
	}

	return shop, nil
}

// DeleteMyShop removes the owner's shop and every product in it.
func (srv *shopService) DeleteMyShop(ctx context.Context, ownerID uuid.UUID) error {
	var (
		deleted        *entity.Shop
		orphanedImages []string
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shopRepo := repoFactory.NewShopRepository()

		shop, err := shopRepo.FindByOwner(ctx, ownerID)
		if err != nil {
			return errors.Wrap(err, "failed to find shop")
		}

		refs, err := deleteShopCascade(ctx, shopRepo, repoFactory.NewProductRepository(), shop)
		if err != nil {
			return err
		}

		deleted = shop
		orphanedImages = refs

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute shop deletion transaction")
	}

	srv.images.Discard(ctx, orphanedImages...)

	srv.log(ctx).Info("Shop deleted", slog.String("shopID", deleted.ID.String()), slog.Int("orphanedImages", len(orphanedImages)))

	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventShopDeleted, deleted.ID.String(), map[string]string{
		"owner_id": ownerID.String(),
	})

	return nil
}

// ListShops returns every shop, newest first.
func (srv *shopService) ListShops(ctx context.Context) ([]*entity.Shop, error) {
	shops, err := srv.shopRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	return shops, nil
}

// GetShop returns a shop by id.
func (srv *shopService) GetShop(ctx context.Context, shopID uuid.UUID) (*entity.Shop, error) {
	shop, err := srv.shopRepo.FindByID(ctx, shopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shop")
	}

	return shop, nil
}

// ShopQRCode renders the share code of an existing shop.
func (srv *shopService) ShopQRCode(ctx context.Context, shopID uuid.UUID) ([]byte, error) {
	if _, err := srv.GetShop(ctx, shopID); err != nil {
		return nil, err
	}

	png, err := srv.qrCodes.GenerateShopQR(shopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate shop QR code")
	}

	return png, nil
}
