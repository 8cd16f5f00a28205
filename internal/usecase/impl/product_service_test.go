package impl

import (
	"context"
	"strings"
	"testing"

	"kampuskart/internal/domain/entity"
	domainerrors "kampuskart/internal/domain/errors"
	mockRepo "kampuskart/internal/mocks/repository"
	mockUsecase "kampuskart/internal/mocks/usecase"
	"kampuskart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixtures struct {
	service     *productService
	productRepo *mockRepo.MockProductRepository
	shopRepo    *mockRepo.MockShopRepository
	images      *mockUsecase.MockImageUsecase
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	shopRepo := mockRepo.NewMockShopRepository(t)
	images := mockUsecase.NewMockImageUsecase(t)

	srv := NewProductService(ProductServiceParams{
		ProductRepo: productRepo,
		ShopRepo:    shopRepo,
		Images:      images,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	}).(*productService)
	srv.now = fixedClock

	return productServiceFixtures{
		service:     srv,
		productRepo: productRepo,
		shopRepo:    shopRepo,
		images:      images,
	}
}

func upload(name string) *usecase.UploadInput {
	return &usecase.UploadInput{Filename: name, Size: 3, Content: strings.NewReader("img")}
}

func TestProductService_CreateProduct_NormalizesFeaturedIndex(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	shop := newTestShop(ownerID, "Tech")
	first, second := upload("1.png"), upload("2.png")

	fx.shopRepo.EXPECT().FindByOwner(ctx, ownerID).Return(shop, nil)
	fx.images.EXPECT().Store(ctx, first).Return("r1.png", nil)
	fx.images.EXPECT().Store(ctx, second).Return("r2.png", nil)
	fx.productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := fx.service.CreateProduct(ctx, ownerID, &usecase.CreateProductInput{
		Name:               "USB-C cable",
		Description:        "1m braided",
		Price:              decimal.RequireFromString("4.99"),
		Stock:              10,
		FeaturedImageIndex: 7,
		Images:             []*usecase.UploadInput{first, second},
	})

	require.NoError(t, err)
	assert.Equal(t, shop.ID, product.ShopID)
	assert.Equal(t, []string{"r1.png", "r2.png"}, product.ImageRefs)
	assert.Equal(t, 0, product.FeaturedImageIndex)
}

func TestProductService_CreateProduct_TooManyImages(t *testing.T) {
	fx := createTestProductService(t)

	_, err := fx.service.CreateProduct(context.Background(), uuid.New(), &usecase.CreateProductInput{
		Name:   "Too many",
		Images: []*usecase.UploadInput{upload("1"), upload("2"), upload("3"), upload("4")},
	})

	assert.True(t, errors.Is(err, domainerrors.ErrTooManyImages))
}

func TestProductService_CreateProduct_PartialUploadIsRolledBack(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	first, second := upload("1.png"), upload("2.txt")

	fx.shopRepo.EXPECT().FindByOwner(ctx, ownerID).Return(newTestShop(ownerID, "Tech"), nil)
	fx.images.EXPECT().Store(ctx, first).Return("r1.png", nil)
	fx.images.EXPECT().Store(ctx, second).Return("", domainerrors.ErrUnsupportedMediaType)
	fx.images.EXPECT().Discard(ctx, []string{"r1.png"}).Return()

	_, err := fx.service.CreateProduct(ctx, ownerID, &usecase.CreateProductInput{
		Name:   "Cable",
		Price:  decimal.NewFromInt(1),
		Images: []*usecase.UploadInput{first, second},
	})

	assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedMediaType))
}

func TestProductService_UpdateProduct_NonOwnerForbidden(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	shop := newTestShop(uuid.New(), "Owner")
	product := newTestProduct(shop.ID, "1", 1)

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.shopRepo.EXPECT().FindByID(ctx, shop.ID).Return(shop, nil)

	_, err := fx.service.UpdateProduct(ctx, uuid.New(), product.ID, &usecase.UpdateProductInput{})

	assert.True(t, errors.Is(err, domainerrors.ErrNotShopOwner))
}

func TestProductService_UpdateProduct_ReplacesImages(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	shop := newTestShop(ownerID, "Owner")
	product := newTestProduct(shop.ID, "1", 1)
	replacement := upload("new.png")
	stock := 9
	featured := 0

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.shopRepo.EXPECT().FindByID(ctx, shop.ID).Return(shop, nil)
	fx.images.EXPECT().Store(ctx, replacement).Return("new-ref.png", nil)
	fx.productRepo.EXPECT().Update(ctx, product).Return(nil)
	fx.images.EXPECT().Discard(ctx, []string{"a.png", "b.png"}).Return()

	got, err := fx.service.UpdateProduct(ctx, ownerID, product.ID, &usecase.UpdateProductInput{
		Stock:              &stock,
		FeaturedImageIndex: &featured,
		Images:             []*usecase.UploadInput{replacement},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"new-ref.png"}, got.ImageRefs)
	assert.Equal(t, 9, got.Stock)
	assert.Equal(t, "new-ref.png", got.FeaturedImage())
}

func TestProductService_UpdateProduct_NegativePrice(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	shop := newTestShop(ownerID, "Owner")
	product := newTestProduct(shop.ID, "1", 1)
	price := decimal.NewFromInt(-1)

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.shopRepo.EXPECT().FindByID(ctx, shop.ID).Return(shop, nil)

	_, err := fx.service.UpdateProduct(ctx, ownerID, product.ID, &usecase.UpdateProductInput{Price: &price})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProductService_DeleteProduct(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	shop := newTestShop(ownerID, "Owner")
	product := newTestProduct(shop.ID, "1", 1)

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.shopRepo.EXPECT().FindByID(ctx, shop.ID).Return(shop, nil)
	fx.productRepo.EXPECT().Delete(ctx, product.ID).Return(nil)
	fx.images.EXPECT().Discard(ctx, []string{"a.png", "b.png"}).Return()

	require.NoError(t, fx.service.DeleteProduct(ctx, ownerID, product.ID))
}

func TestProductService_ListMarketplace_JoinsShops(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	shopA := newTestShop(uuid.New(), "A")
	shopB := newTestShop(uuid.New(), "B")
	products := []*entity.Product{
		newTestProduct(shopA.ID, "1", 1),
		newTestProduct(shopB.ID, "2", 1),
		newTestProduct(shopA.ID, "3", 1),
	}

	fx.productRepo.EXPECT().List(ctx, entity.Page{Number: 2, Size: 50}).Return(products, int64(103), nil)
	fx.shopRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{shopA.ID, shopB.ID}).Return([]*entity.Shop{shopB, shopA}, nil)

	page, err := fx.service.ListMarketplace(ctx, entity.Page{Number: 2, Size: 500})

	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, shopA, page.Items[0].Shop)
	assert.Equal(t, shopB, page.Items[1].Shop)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 50, page.Page.Size)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, id).Return(nil, domainerrors.ErrProductNotFound)

	_, err := fx.service.GetProduct(ctx, id)

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}
