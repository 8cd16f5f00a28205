package impl

import (
	"context"
	"testing"

	"kampuskart/internal/domain/entity"
	domainerrors "kampuskart/internal/domain/errors"
	mockRepo "kampuskart/internal/mocks/repository"
	"kampuskart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cartServiceFixtures struct {
	service     *cartService
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
	shopRepo    *mockRepo.MockShopRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	shopRepo := mockRepo.NewMockShopRepository(t)

	srv := NewCartService(CartServiceParams{
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		ShopRepo:    shopRepo,
		Logger:      newDiscardLogger(),
	}).(*cartService)
	srv.now = fixedClock

	return cartServiceFixtures{
		service:     srv,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		shopRepo:    shopRepo,
	}
}

func (fx cartServiceFixtures) expectLookup(products []*entity.Product, shops []*entity.Shop) {
	fx.productRepo.EXPECT().FindByIDs(mock.Anything, mock.Anything).Return(products, nil)
	fx.shopRepo.EXPECT().FindByIDs(mock.Anything, mock.Anything).Return(shops, nil)
}

func TestCartService_GetCart_CreatesEmptyCart(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	buyerID := uuid.New()

	fx.cartRepo.EXPECT().FindByBuyer(ctx, buyerID).Return(nil, domainerrors.ErrCartNotFound)
	fx.cartRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)

	view, err := fx.service.GetCart(ctx, buyerID, nil)

	require.NoError(t, err)
	assert.Equal(t, buyerID, view.BuyerID)
	assert.Empty(t, view.Items)
	assert.Equal(t, 0, view.TotalItems)
	assert.True(t, view.CartTotal.IsZero())
}

func TestCartService_GetCart_ConcurrentCreateReadsWinner(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	buyerID := uuid.New()
	existing := entity.NewCart(buyerID, fixedNow)

	fx.cartRepo.EXPECT().FindByBuyer(ctx, buyerID).Return(nil, domainerrors.ErrCartNotFound).Once()
	fx.cartRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Cart")).Return(domainerrors.ErrCartAlreadyExists)
	fx.cartRepo.EXPECT().FindByBuyer(ctx, buyerID).Return(existing, nil).Once()

	view, err := fx.service.GetCart(ctx, buyerID, nil)

	require.NoError(t, err)
	assert.Equal(t, existing.ID, view.CartID)
}

func TestCartService_AddItem_TwiceIncrementsSameLine(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	buyerID := uuid.New()
	shop := newTestShop(uuid.New(), "Stationery")
	product := newTestProduct(shop.ID, "2.50", 5)
	cart := entity.NewCart(buyerID, fixedNow)

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.shopRepo.EXPECT().FindByID(ctx, shop.ID).Return(shop, nil)
	fx.cartRepo.EXPECT().FindByBuyer(ctx, buyerID).Return(cart, nil)
	fx.cartRepo.EXPECT().Save(ctx, cart).Return(nil).Times(2)
	fx.expectLookup([]*entity.Product{product}, []*entity.Shop{shop})

	input := &usecase.AddCartItemInput{ProductID: product.ID, Quantity: 1}

	_, err := fx.service.AddItem(ctx, buyerID, input, nil)
	require.NoError(t, err)

	view, err := fx.service.AddItem(ctx, buyerID, input, nil)
	require.NoError(t, err)

	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.Equal(t, 2, view.TotalItems)
	assert.True(t, decimal.RequireFromString("5").Equal(view.CartTotal))
}

func TestCartService_AddItem_OutOfStock(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	buyerID := uuid.New()
	shop := newTestShop(uuid.New(), "Stationery")
	product := newTestProduct(shop.ID, "2.50", 3)
	cart := entity.NewCart(buyerID, fixedNow)

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.shopRepo.EXPECT().FindByID(ctx, shop.ID).Return(shop, nil)
	fx.cartRepo.EXPECT().FindByBuyer(ctx, buyerID).Return(cart, nil)

	_, err := fx.service.AddItem(ctx, buyerID, &usecase.AddCartItemInput{ProductID: product.ID, Quantity: 4}, nil)

	var stockErr *domainerrors.OutOfStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 3, stockErr.AvailableStock)
	fx.cartRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCartService_AddItem_ProductGone(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().FindByID(ctx, productID).Return(nil, domainerrors.ErrProductNotFound)

	_, err := fx.service.AddItem(ctx, uuid.New(), &usecase.AddCartItemInput{ProductID: productID, Quantity: 1}, nil)

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCartService_AddItem_ShopGone(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	product := newTestProduct(uuid.New(), "1", 1)

	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.shopRepo.EXPECT().FindByID(ctx, product.ShopID).Return(nil, domainerrors.ErrShopNotFound)

	_, err := fx.service.AddItem(ctx, uuid.New(), &usecase.AddCartItemInput{ProductID: product.ID, Quantity: 1}, nil)

	assert.True(t, errors.Is(err, domainerrors.ErrShopNotFound))
}

func TestCartService_UpdateItem_ZeroRemoves(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	buyerID := uuid.New()
	shop := newTestShop(uuid.New(), "Stationery")
	product := newTestProduct(shop.ID, "1", 5)
	cart := entity.NewCart(buyerID, fixedNow)
	item, err := cart.AddItem(product, shop, 2, fixedNow)
	require.NoError(t, err)

	fx.cartRepo.EXPECT().FindByBuyer(ctx, buyerID).Return(cart, nil)
	fx.cartRepo.EXPECT().Save(ctx, cart).Return(nil)

	view, err := fx.service.UpdateItem(ctx, buyerID, item.ID, 0, nil)

	require.NoError(t, err)
	assert.Empty(t, view.Items)
	fx.productRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestCartService_UpdateItem_ChecksLiveStock(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	buyerID := uuid.New()
	shop := newTestShop(uuid.New(), "Stationery")
	product := newTestProduct(shop.ID, "1", 5)
	cart := entity.NewCart(buyerID, fixedNow)
	item, err := cart.AddItem(product, shop, 2, fixedNow)
	require.NoError(t, err)

	live := *product
	live.Stock = 2

	fx.cartRepo.EXPECT().FindByBuyer(ctx, buyerID).Return(cart, nil)
	fx.productRepo.EXPECT().FindByID(ctx, product.ID).Return(&live, nil)

	_, err = fx.service.UpdateItem(ctx, buyerID, item.ID, 3, nil)

	var stockErr *domainerrors.OutOfStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 2, stockErr.AvailableStock)
	assert.Equal(t, 2, stockErr.CurrentQuantity)
}

func TestCartService_RemoveAsymmetry(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	buyerID := uuid.New()
	shop := newTestShop(uuid.New(), "Stationery")
	product := newTestProduct(shop.ID, "1", 5)
	cart := entity.NewCart(buyerID, fixedNow)
	_, err := cart.AddItem(product, shop, 1, fixedNow)
	require.NoError(t, err)

	missing := uuid.New()

	fx.cartRepo.EXPECT().FindByBuyer(ctx, buyerID).Return(cart, nil)
	fx.expectLookup([]*entity.Product{product}, []*entity.Shop{shop})

	_, err = fx.service.RemoveItem(ctx, buyerID, missing, nil)
	assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))

	view, err := fx.service.RemoveItems(ctx, buyerID, []uuid.UUID{missing}, nil)
	require.NoError(t, err)
	assert.Len(t, view.Items, 1)
	fx.cartRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCartService_GetCart_SelectionTotals(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	buyerID := uuid.New()
	shopA := newTestShop(uuid.New(), "A")
	shopB := newTestShop(uuid.New(), "B")
	productA := newTestProduct(shopA.ID, "10", 5)
	productB := newTestProduct(shopB.ID, "4", 5)
	cart := entity.NewCart(buyerID, fixedNow)
	itemA, err := cart.AddItem(productA, shopA, 2, fixedNow)
	require.NoError(t, err)
	_, err = cart.AddItem(productB, shopB, 1, fixedNow)
	require.NoError(t, err)

	fx.cartRepo.EXPECT().FindByBuyer(ctx, buyerID).Return(cart, nil)
	fx.expectLookup([]*entity.Product{productA, productB}, []*entity.Shop{shopA, shopB})

	view, err := fx.service.GetCart(ctx, buyerID, usecase.CartSelection{itemA.ID})

	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("20").Equal(view.SelectedTotal))
	assert.True(t, decimal.RequireFromString("24").Equal(view.CartTotal))
	require.Len(t, view.Shops, 2)
	assert.True(t, view.Shops[0].AllSelected)
	assert.False(t, view.Shops[1].AllSelected)
}

func TestCartService_Clear(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	buyerID := uuid.New()
	shop := newTestShop(uuid.New(), "Stationery")
	cart := entity.NewCart(buyerID, fixedNow)
	_, err := cart.AddItem(newTestProduct(shop.ID, "1", 5), shop, 1, fixedNow)
	require.NoError(t, err)

	fx.cartRepo.EXPECT().FindByBuyer(ctx, buyerID).Return(cart, nil)
	fx.cartRepo.EXPECT().Save(ctx, cart).Return(nil)

	view, err := fx.service.Clear(ctx, buyerID)

	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, cart.ID, view.CartID)
}
