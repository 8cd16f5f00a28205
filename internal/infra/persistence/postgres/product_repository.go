package postgres

import (
	"context"
	"slices"

	"kampuskart/internal/domain/entity"
	domainerrors "kampuskart/internal/domain/errors"
	"kampuskart/internal/domain/repository"
	"kampuskart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&productM).Error; err != nil {
		if isNotFound(err) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var models []*model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by ids")
	}

	return toProductsDomain(models), nil
}

func (repo *productRepository) ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.Product, error) {
	var models []*model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shop products")
	}

	return toProductsDomain(models), nil
}

func (repo *productRepository) List(ctx context.Context, page entity.Page) ([]*entity.Product, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	var models []*model.ProductModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&models).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	return toProductsDomain(models), total, nil
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).Model(productM).Select("*").Omit("created_at", "shop_id").Updates(productM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrProductNotFound
	}

	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) DeleteByShop(ctx context.Context, shopID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).Where("shop_id = ?", shopID).Delete(&model.ProductModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete shop products")
	}

	return result.RowsAffected, nil
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	refs := data.ImageRefs
	if refs == nil {
		refs = []string{}
	}

	return &entity.Product{
		ID:                 data.ID,
		ShopID:             data.ShopID,
		Name:               data.Name,
		Description:        data.Description,
		Price:              data.Price,
		Stock:              data.Stock,
		ImageRefs:          refs,
		FeaturedImageIndex: data.FeaturedImageIndex,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func toProductsDomain(models []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(models))
	for _, productM := range models {
		products = append(products, toProductDomain(productM))
	}

	return products
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:                 data.ID,
		ShopID:             data.ShopID,
		Name:               data.Name,
		Description:        data.Description,
		Price:              data.Price,
		Stock:              data.Stock,
		ImageRefs:          slices.Clone(data.ImageRefs),
		FeaturedImageIndex: data.FeaturedImageIndex,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
