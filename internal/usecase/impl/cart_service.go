package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "kampuskart/internal/delivery/context"
	"kampuskart/internal/domain/entity"
	domainerrors "kampuskart/internal/domain/errors"
	"kampuskart/internal/domain/repository"
	"kampuskart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface. Each mutation is a single
// read-modify-write of the buyer's cart document.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	shopRepo    repository.ShopRepository
	now         func() time.Time
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	ShopRepo    repository.ShopRepository
	Logger      *slog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		shopRepo:    params.ShopRepo,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the buyer's cart view, creating an empty cart on first use.
func (srv *cartService) GetCart(ctx context.Context, buyerID uuid.UUID, selection usecase.CartSelection) (*entity.CartView, error) {
	cart, err := srv.getOrCreate(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	return srv.resolveView(ctx, cart, selection)
}

// AddItem adds or increments a product line after checking live stock.
func (srv *cartService) AddItem(
	ctx context.Context,
	buyerID uuid.UUID,
	input *usecase.AddCartItemInput,
	selection usecase.CartSelection,
) (*entity.CartView, error) {
	if input.Quantity < 1 {
		return nil, domainerrors.NewValidationError("Quantity must be at least 1")
	}

	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	shop, err := srv.shopRepo.FindByID(ctx, product.ShopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shop of product")
	}

	cart, err := srv.getOrCreate(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	item, err := cart.AddItem(product, shop, input.Quantity, srv.now())
	if err != nil {
		srv.log(ctx).Info("Add to cart rejected",
			slog.String("buyerID", buyerID.String()),
			slog.String("productID", product.ID.String()),
			slog.Int("requested", input.Quantity),
			slog.Int("stock", product.Stock))

		return nil, err
	}

	if err := srv.cartRepo.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	srv.log(ctx).Debug("Cart item added",
		slog.String("buyerID", buyerID.String()),
		slog.String("itemID", item.ID.String()),
		slog.Int("quantity", item.Quantity))

	return srv.resolveView(ctx, cart, selection)
}

// UpdateItem overwrites an item's quantity, re-reading the product's stock.
func (srv *cartService) UpdateItem(
	ctx context.Context,
	buyerID, itemID uuid.UUID,
	quantity int,
	selection usecase.CartSelection,
) (*entity.CartView, error) {
	cart, err := srv.getOrCreate(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	item, found := cart.FindItem(itemID)
	if !found {
		return nil, domainerrors.ErrCartItemNotFound
	}

	liveStock := 0
	if quantity >= 1 {
		product, err := srv.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find product")
		}
		liveStock = product.Stock
	}

	removed, err := cart.SetQuantity(itemID, quantity, liveStock, srv.now())
	if err != nil {
		return nil, err
	}

	if err := srv.cartRepo.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	if removed {
		srv.log(ctx).Debug("Cart item removed by zero quantity", slog.String("itemID", itemID.String()))
	}

	return srv.resolveView(ctx, cart, selection)
}

// RemoveItem deletes a single line.
func (srv *cartService) RemoveItem(ctx context.Context, buyerID, itemID uuid.UUID, selection usecase.CartSelection) (*entity.CartView, error) {
	cart, err := srv.getOrCreate(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	if err := cart.RemoveItem(itemID, srv.now()); err != nil {
		return nil, err
	}

	if err := srv.cartRepo.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	return srv.resolveView(ctx, cart, selection)
}

// RemoveItems deletes every listed line that exists.
func (srv *cartService) RemoveItems(
	ctx context.Context,
	buyerID uuid.UUID,
	itemIDs []uuid.UUID,
	selection usecase.CartSelection,
) (*entity.CartView, error) {
	cart, err := srv.getOrCreate(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	if removed := cart.RemoveItems(itemIDs, srv.now()); removed > 0 {
		if err := srv.cartRepo.Save(ctx, cart); err != nil {
			return nil, errors.Wrap(err, "failed to save cart")
		}
	}

	return srv.resolveView(ctx, cart, selection)
}

// Clear empties the cart.
func (srv *cartService) Clear(ctx context.Context, buyerID uuid.UUID) (*entity.CartView, error) {
	cart, err := srv.getOrCreate(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	if len(cart.Items) > 0 {
		cart.Clear(srv.now())
		if err := srv.cartRepo.Save(ctx, cart); err != nil {
			return nil, errors.Wrap(err, "failed to save cart")
		}
	}

	return srv.resolveView(ctx, cart, nil)
}

// getOrCreate loads the buyer's cart or inserts an empty one. A concurrent
// insert for the same buyer is resolved by reading the winner.
func (srv *cartService) getOrCreate(ctx context.Context, buyerID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.cartRepo.FindByBuyer(ctx, buyerID)
	if err == nil {
		return cart, nil
	}

	if !errors.Is(err, domainerrors.ErrCartNotFound) {
		return nil, errors.Wrap(err, "failed to find cart")
	}

	cart = entity.NewCart(buyerID, srv.now())

	err = srv.cartRepo.Create(ctx, cart)
	if errors.Is(err, domainerrors.ErrCartAlreadyExists) {
		cart, err = srv.cartRepo.FindByBuyer(ctx, buyerID)
	}

	if err != nil {
		return nil, errors.Wrap(err, "failed to create cart")
	}

	srv.log(ctx).Debug("Cart created", slog.String("buyerID", buyerID.String()))

	return cart, nil
}

// resolveView joins the cart with the live products and shops it references.
func (srv *cartService) resolveView(ctx context.Context, cart *entity.Cart, selection usecase.CartSelection) (*entity.CartView, error) {
	lookup := entity.CartLookup{
		Products: map[uuid.UUID]*entity.Product{},
		Shops:    map[uuid.UUID]*entity.Shop{},
	}

	if len(cart.Items) == 0 {
		return entity.ComputeView(cart, selection.Set(), lookup), nil
	}

	products, err := srv.productRepo.FindByIDs(ctx, cart.ProductIDs())
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart products")
	}

	for _, product := range products {
		lookup.Products[product.ID] = product
	}

	shops, err := srv.shopRepo.FindByIDs(ctx, cart.ShopIDs())
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart shops")
	}

	for _, shop := range shops {
		lookup.Shops[shop.ID] = shop
	}

	return entity.ComputeView(cart, selection.Set(), lookup), nil
}
