package impl

import (
	"context"
	"strings"
	"testing"

	"kampuskart/internal/domain/entity"
	domainerrors "kampuskart/internal/domain/errors"
	"kampuskart/internal/domain/repository"
	"kampuskart/internal/domain/service"
	mockRepo "kampuskart/internal/mocks/repository"
	mockSvc "kampuskart/internal/mocks/service"
	mockUsecase "kampuskart/internal/mocks/usecase"
	"kampuskart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type shopServiceFixtures struct {
	service   *shopService
	txManager *mockRepo.MockTransactionManager
	shopRepo  *mockRepo.MockShopRepository
	images    *mockUsecase.MockImageUsecase
	qrCodes   *mockSvc.MockQRCodeService
	publisher *mockSvc.MockEventPublisher
}

func createTestShopService(t *testing.T) shopServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	shopRepo := mockRepo.NewMockShopRepository(t)
	images := mockUsecase.NewMockImageUsecase(t)
	qrCodes := mockSvc.NewMockQRCodeService(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	srv := NewShopService(ShopServiceParams{
		TxManager: txManager,
		ShopRepo:  shopRepo,
		Images:    images,
		QRCodes:   qrCodes,
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	}).(*shopService)
	srv.now = fixedClock

	return shopServiceFixtures{
		service:   srv,
		txManager: txManager,
		shopRepo:  shopRepo,
		images:    images,
		qrCodes:   qrCodes,
		publisher: publisher,
	}
}

func TestShopService_CreateShop_WithLogo(t *testing.T) {
	fx := createTestShopService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	logo := &usecase.UploadInput{Filename: "logo.png", Size: 3, Content: strings.NewReader("png")}

	fx.shopRepo.EXPECT().FindByOwner(ctx, ownerID).Return(nil, domainerrors.ErrShopNotFound)
	fx.images.EXPECT().Store(ctx, logo).Return("logo-ref.png", nil)
	fx.shopRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Shop")).Return(nil)

	shop, err := fx.service.CreateShop(ctx, ownerID, &usecase.CreateShopInput{
		Name:        "  Dorm Snacks ",
		Description: "Late night noodles",
		Logo:        logo,
	})

	require.NoError(t, err)
	assert.Equal(t, "Dorm Snacks", shop.Name)
	assert.Equal(t, "logo-ref.png", shop.LogoRef)
	assert.Equal(t, ownerID, shop.OwnerID)
}

func TestShopService_CreateShop_OnePerOwner(t *testing.T) {
	fx := createTestShopService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.shopRepo.EXPECT().FindByOwner(ctx, ownerID).Return(newTestShop(ownerID, "Existing"), nil)

	_, err := fx.service.CreateShop(ctx, ownerID, &usecase.CreateShopInput{Name: "Second", Description: "Nope"})

	assert.True(t, errors.Is(err, domainerrors.ErrShopAlreadyExists))
}

func TestShopService_CreateShop_RaceDiscardsLogo(t *testing.T) {
	fx := createTestShopService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	logo := &usecase.UploadInput{Filename: "logo.png", Size: 3, Content: strings.NewReader("png")}

	fx.shopRepo.EXPECT().FindByOwner(ctx, ownerID).Return(nil, domainerrors.ErrShopNotFound)
	fx.images.EXPECT().Store(ctx, logo).Return("logo-ref.png", nil)
	fx.shopRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrShopAlreadyExists)
	fx.images.EXPECT().Discard(ctx, []string{"logo-ref.png"}).Return()

	_, err := fx.service.CreateShop(ctx, ownerID, &usecase.CreateShopInput{Name: "Shop", Description: "Desc", Logo: logo})

	assert.True(t, errors.Is(err, domainerrors.ErrShopAlreadyExists))
}

func TestShopService_CreateShop_Validation(t *testing.T) {
	fx := createTestShopService(t)

	_, err := fx.service.CreateShop(context.Background(), uuid.New(), &usecase.CreateShopInput{
		Name:        strings.Repeat("x", 51),
		Description: "ok",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestShopService_UpdateMyShop_ReplacesLogo(t *testing.T) {
	fx := createTestShopService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	shop := newTestShop(ownerID, "Books")
	logo := &usecase.UploadInput{Filename: "new.png", Size: 3, Content: strings.NewReader("png")}
	name := "Used Books"

	fx.shopRepo.EXPECT().FindByOwner(ctx, ownerID).Return(shop, nil)
	fx.images.EXPECT().Store(ctx, logo).Return("new-ref.png", nil)
	fx.shopRepo.EXPECT().Update(ctx, shop).Return(nil)
	fx.images.EXPECT().Discard(ctx, []string{"Books-logo.png"}).Return()

	got, err := fx.service.UpdateMyShop(ctx, ownerID, &usecase.UpdateShopInput{Name: &name, Logo: logo})

	require.NoError(t, err)
	assert.Equal(t, "Used Books", got.Name)
	assert.Equal(t, "new-ref.png", got.LogoRef)
}

func TestShopService_DeleteMyShop_Cascades(t *testing.T) {
	fx := createTestShopService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	shop := newTestShop(ownerID, "Plants")
	product := newTestProduct(shop.ID, "5", 2)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockShopRepo := mockRepo.NewMockShopRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().NewShopRepository().Return(mockShopRepo)
			mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)

			mockShopRepo.EXPECT().FindByOwner(ctx, ownerID).Return(shop, nil)
			mockProductRepo.EXPECT().ListByShop(ctx, shop.ID).Return([]*entity.Product{product}, nil)
			mockProductRepo.EXPECT().DeleteByShop(ctx, shop.ID).Return(int64(1), nil)
			mockShopRepo.EXPECT().Delete(ctx, shop.ID).Return(nil)

			return fn(mockFactory)
		})

	fx.images.EXPECT().Discard(ctx, []string{"a.png", "b.png", "Plants-logo.png"}).Return()
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(e *service.DomainEvent) bool {
			return e.Type == service.EventShopDeleted && e.AggregateID == shop.ID.String()
		})).
		Return(nil)

	require.NoError(t, fx.service.DeleteMyShop(ctx, ownerID))
}

func TestShopService_ShopQRCode(t *testing.T) {
	fx := createTestShopService(t)
	ctx := context.Background()
	shop := newTestShop(uuid.New(), "QR")

	fx.shopRepo.EXPECT().FindByID(ctx, shop.ID).Return(shop, nil)
	fx.qrCodes.EXPECT().GenerateShopQR(shop.ID).Return([]byte("png"), nil)

	png, err := fx.service.ShopQRCode(ctx, shop.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestShopService_ShopQRCode_UnknownShop(t *testing.T) {
	fx := createTestShopService(t)
	ctx := context.Background()
	shopID := uuid.New()

	fx.shopRepo.EXPECT().FindByID(ctx, shopID).Return(nil, domainerrors.ErrShopNotFound)

	_, err := fx.service.ShopQRCode(ctx, shopID)

	assert.True(t, errors.Is(err, domainerrors.ErrShopNotFound))
}
