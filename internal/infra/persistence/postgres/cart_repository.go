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

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

func (repo *cartRepository) FindByBuyer(ctx context.Context, buyerID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel
	err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("buyer_id = ?", buyerID).
		First(&cartM).Error
	if err != nil {
		if isNotFound(err) {
			return nil, domainerrors.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart")
	}

	return toCartDomain(&cartM), nil
}

func (repo *cartRepository) Create(ctx context.Context, cart *entity.Cart) error {
	cartM := fromCartDomain(cart)

	// Items are written by Save; a new cart is always empty.
	err := repo.db.WithContext(ctx).Omit("Items").Create(cartM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrCartAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
	}

	cart.CreatedAt = cartM.CreatedAt
	cart.UpdatedAt = cartM.UpdatedAt

	return nil
}

func (repo *cartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	cartM := fromCartDomain(cart)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.CartModel{}).
			Where("id = ?", cartM.ID).
			Update("updated_at", cartM.UpdatedAt)
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to touch cart")
		}

		if result.RowsAffected == 0 {
			return domainerrors.ErrCartNotFound
		}

		if err := tx.Where("cart_id = ?", cartM.ID).Delete(&model.CartItemModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear cart items")
		}

		if len(cartM.Items) == 0 {
			return nil
		}

		if err := tx.Create(cartM.Items).Error; err != nil {
			return errors.Wrap(err, "failed to insert cart items")
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrCartNotFound) {
			return domainerrors.ErrCartNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save cart")
	}

	return nil
}

func (repo *cartRepository) DeleteByBuyer(ctx context.Context, buyerID uuid.UUID) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cartIDs := tx.Model(&model.CartModel{}).Select("id").Where("buyer_id = ?", buyerID)
		if err := tx.Where("cart_id IN (?)", cartIDs).Delete(&model.CartItemModel{}).Error; err != nil {
			return err
		}

		return tx.Where("buyer_id = ?", buyerID).Delete(&model.CartModel{}).Error
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete cart")
	}

	return nil
}

func toCartDomain(data *model.CartModel) *entity.Cart {
	items := make([]*entity.CartItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		images := itemM.ProductImages
		if images == nil {
			images = []string{}
		}

		items = append(items, &entity.CartItem{
			ID:        itemM.ID,
			ProductID: itemM.ProductID,
			ShopID:    itemM.ShopID,
			Quantity:  itemM.Quantity,
			AddedAt:   itemM.AddedAt,
			Snapshot: entity.ProductSnapshot{
				ProductName:   itemM.ProductName,
				ProductPrice:  itemM.ProductPrice,
				ProductImages: images,
				ProductStock:  itemM.ProductStock,
				ShopName:      itemM.ShopName,
				ShopLogo:      itemM.ShopLogo,
			},
		})
	}

	return &entity.Cart{
		ID:        data.ID,
		BuyerID:   data.BuyerID,
		Items:     items,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCartDomain(data *entity.Cart) *model.CartModel {
	items := make([]*model.CartItemModel, 0, len(data.Items))
	for position, item := range data.Items {
		items = append(items, &model.CartItemModel{
			ID:            item.ID,
			CartID:        data.ID,
			Position:      position,
			ProductID:     item.ProductID,
			ShopID:        item.ShopID,
			Quantity:      item.Quantity,
			AddedAt:       item.AddedAt,
			ProductName:   item.Snapshot.ProductName,
			ProductPrice:  item.Snapshot.ProductPrice,
			ProductImages: slices.Clone(item.Snapshot.ProductImages),
			ProductStock:  item.Snapshot.ProductStock,
			ShopName:      item.Snapshot.ShopName,
			ShopLogo:      item.Snapshot.ShopLogo,
		})
	}

	return &model.CartModel{
		ID:        data.ID,
		BuyerID:   data.BuyerID,
		Items:     items,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
