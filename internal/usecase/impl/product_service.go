package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"kampuskart/config"
	deliverycontext "kampuskart/internal/delivery/context"
	"kampuskart/internal/domain/entity"
	domainerrors "kampuskart/internal/domain/errors"
	"kampuskart/internal/domain/repository"
	"kampuskart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type productService struct {
	productRepo repository.ProductRepository
	shopRepo    repository.ShopRepository
	images      usecase.ImageUsecase
	pageSize    int
	maxPageSize int
	now         func() time.Time
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	ShopRepo    repository.ShopRepository
	Images      usecase.ImageUsecase
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProductService creates a new product service.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	pageSize, maxPageSize := 12, 50
	if params.Config != nil && params.Config.Marketplace != nil {
		if params.Config.Marketplace.DefaultPageSize > 0 {
			pageSize = params.Config.Marketplace.DefaultPageSize
		}
		if params.Config.Marketplace.MaxPageSize > 0 {
			maxPageSize = params.Config.Marketplace.MaxPageSize
		}
	}

	return &productService{
		productRepo: params.ProductRepo,
		shopRepo:    params.ShopRepo,
		images:      params.Images,
		pageSize:    pageSize,
		maxPageSize: maxPageSize,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct lists a new product in the owner's shop.
func (srv *productService) CreateProduct(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateProductInput) (*entity.Product, error) {
	if len(input.Images) > entity.MaxProductImages {
		return nil, domainerrors.ErrTooManyImages
	}

	shop, err := srv.shopRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shop")
	}

	now := srv.now()
	product := &entity.Product{
		ID:          uuid.New(),
		ShopID:      shop.ID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		ImageRefs:   []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	refs, err := srv.storeImages(ctx, input.Images)
	if err != nil {
		return nil, err
	}

	product.ImageRefs = refs
	product.SetFeaturedImage(input.FeaturedImageIndex)

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.images.Discard(ctx, refs...)

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created",
		slog.String("productID", product.ID.String()),
		slog.String("shopID", shop.ID.String()),
		slog.Int("images", len(refs)))

	return product, nil
}

// ListMyProducts returns the products of the owner's shop, newest first.
func (srv *productService) ListMyProducts(ctx context.Context, ownerID uuid.UUID) ([]*entity.Product, error) {
	shop, err := srv.shopRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shop")
	}

	products, err := srv.productRepo.ListByShop(ctx, shop.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// UpdateProduct changes a product owned by the caller.
func (srv *productService) UpdateProduct(
	ctx context.Context,
	ownerID, productID uuid.UUID,
	input *usecase.UpdateProductInput,
) (*entity.Product, error) {
	if len(input.Images) > entity.MaxProductImages {
		return nil, domainerrors.ErrTooManyImages
	}

	product, err := srv.findOwnedProduct(ctx, ownerID, productID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}

	featured := product.FeaturedImageIndex
	if input.FeaturedImageIndex != nil {
		featured = *input.FeaturedImageIndex
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	previousRefs := product.ImageRefs
	if len(input.Images) > 0 {
		refs, err := srv.storeImages(ctx, input.Images)
		if err != nil {
			return nil, err
		}
		product.ImageRefs = refs
	}

	product.SetFeaturedImage(featured)
	product.UpdatedAt = srv.now()

	replaced := !slices.Equal(previousRefs, product.ImageRefs)

	if err := srv.productRepo.Update(ctx, product); err != nil {
		if replaced {
			srv.images.Discard(ctx, product.ImageRefs...)
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	if replaced {
		srv.images.Discard(ctx, previousRefs...)
	}

	return product, nil
}

// DeleteProduct removes a product owned by the caller.
func (srv *productService) DeleteProduct(ctx context.Context, ownerID, productID uuid.UUID) error {
	product, err := srv.findOwnedProduct(ctx, ownerID, productID)
	if err != nil {
		return err
	}

	if err := srv.productRepo.Delete(ctx, product.ID); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	srv.images.Discard(ctx, product.ImageRefs...)

	srv.log(ctx).Info("Product deleted", slog.String("productID", product.ID.String()))

	return nil
}

// ListMarketplace returns a page of all products with their shops.
func (srv *productService) ListMarketplace(ctx context.Context, page entity.Page) (*usecase.ProductPage, error) {
	page = page.Clamp(srv.pageSize, srv.maxPageSize)

	products, total, err := srv.productRepo.List(ctx, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	shopIDs := make([]uuid.UUID, 0, len(products))
	for _, product := range products {
		if !slices.Contains(shopIDs, product.ShopID) {
			shopIDs = append(shopIDs, product.ShopID)
		}
	}

	shopsByID := make(map[uuid.UUID]*entity.Shop, len(shopIDs))
	if len(shopIDs) > 0 {
		shops, err := srv.shopRepo.FindByIDs(ctx, shopIDs)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load shops")
		}

		for _, shop := range shops {
			shopsByID[shop.ID] = shop
		}
	}

	items := make([]*usecase.ProductListing, 0, len(products))
	for _, product := range products {
		items = append(items, &usecase.ProductListing{
			Product: product,
			Shop:    shopsByID[product.ShopID],
		})
	}

	return &usecase.ProductPage{
		Items:      items,
		Page:       page,
		Total:      total,
		TotalPages: page.TotalPages(total),
	}, nil
}

// GetProduct returns a product together with its shop.
func (srv *productService) GetProduct(ctx context.Context, productID uuid.UUID) (*usecase.ProductListing, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	shop, err := srv.shopRepo.FindByID(ctx, product.ShopID)
	if err != nil && !errors.Is(err, domainerrors.ErrShopNotFound) {
		return nil, errors.Wrap(err, "failed to find shop")
	}

	return &usecase.ProductListing{Product: product, Shop: shop}, nil
}

func (srv *productService) findOwnedProduct(ctx context.Context, ownerID, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	shop, err := srv.shopRepo.FindByID(ctx, product.ShopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shop")
	}

	if !shop.IsOwnedBy(ownerID) {
		srv.log(ctx).Warn("Product access by non-owner",
			slog.String("productID", productID.String()),
			slog.String("callerID", ownerID.String()))

		return nil, domainerrors.ErrNotShopOwner
	}

	return product, nil
}

// storeImages uploads all images or none.
func (srv *productService) storeImages(ctx context.Context, uploads []*usecase.UploadInput) ([]string, error) {
	refs := make([]string, 0, len(uploads))
	for _, upload := range uploads {
		ref, err := srv.images.Store(ctx, upload)
		if err != nil {
			srv.images.Discard(ctx, refs...)

			return nil, err
		}
		refs = append(refs, ref)
	}

	return refs, nil
}
