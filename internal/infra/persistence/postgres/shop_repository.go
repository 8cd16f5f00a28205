package postgres

import (
	"context"

	"kampuskart/internal/domain/entity"
	domainerrors "kampuskart/internal/domain/errors"
	"kampuskart/internal/domain/repository"
	"kampuskart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{db: db}
}

func (repo *shopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *shopRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error) {
	return repo.findOne(ctx, "owner_id = ?", ownerID)
}

func (repo *shopRepository) findOne(ctx context.Context, query string, arg any) (*entity.Shop, error) {
	var shopM model.ShopModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&shopM).Error; err != nil {
		if isNotFound(err) {
			return nil, domainerrors.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}

	return toShopDomain(&shopM), nil
}

func (repo *shopRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Shop, error) {
	if len(ids) == 0 {
		return []*entity.Shop{}, nil
	}

	var models []*model.ShopModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find shops by ids")
	}

	return toShopsDomain(models), nil
}

func (repo *shopRepository) List(ctx context.Context) ([]*entity.Shop, error) {
	var models []*model.ShopModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	return toShopsDomain(models), nil
}

func (repo *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	shopM := fromShopDomain(shop)

	if err := repo.db.WithContext(ctx).Create(shopM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrShopAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop")
	}

	shop.CreatedAt = shopM.CreatedAt
	shop.UpdatedAt = shopM.UpdatedAt

	return nil
}

func (repo *shopRepository) Update(ctx context.Context, shop *entity.Shop) error {
	shopM := fromShopDomain(shop)

	result := repo.db.WithContext(ctx).Model(shopM).Select("*").Omit("created_at", "owner_id").Updates(shopM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update shop")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrShopNotFound
	}

	shop.UpdatedAt = shopM.UpdatedAt

	return nil
}

func (repo *shopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ShopModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete shop")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrShopNotFound
	}

	return nil
}

func toShopDomain(data *model.ShopModel) *entity.Shop {
	if data == nil {
		return nil
	}

	return &entity.Shop{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Description: data.Description,
		LogoRef:     data.LogoRef,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func toShopsDomain(models []*model.ShopModel) []*entity.Shop {
	shops := make([]*entity.Shop, 0, len(models))
	for _, shopM := range models {
		shops = append(shops, toShopDomain(shopM))
	}

	return shops
}

func fromShopDomain(data *entity.Shop) *model.ShopModel {
	return &model.ShopModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		Description: data.Description,
		LogoRef:     data.LogoRef,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
