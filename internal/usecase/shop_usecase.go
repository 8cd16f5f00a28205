package usecase

import (
	"context"

	"kampuskart/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateShopInput defines a new shop.
type CreateShopInput struct {
	Name        string
	Description string
	Logo        *UploadInput
}

// UpdateShopInput holds optional shop changes. A new logo replaces the old one.
type UpdateShopInput struct {
	Name        *string
	Description *string
	Logo        *UploadInput
}

// ShopUsecase manages a seller's shop and the public shop directory.
type ShopUsecase interface {
	CreateShop(ctx context.Context, ownerID uuid.UUID, input *CreateShopInput) (*entity.Shop, error)
	GetMyShop(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error)
	UpdateMyShop(ctx context.Context, ownerID uuid.UUID, input *UpdateShopInput) (*entity.Shop, error)

	// DeleteMyShop removes the shop and all of its products. Image cleanup is best effort.
	DeleteMyShop(ctx context.Context, ownerID uuid.UUID) error

	ListShops(ctx context.Context) ([]*entity.Shop, error)
	GetShop(ctx context.Context, shopID uuid.UUID) (*entity.Shop, error)

	// ShopQRCode renders a PNG share code for the shop page.
	ShopQRCode(ctx context.Context, shopID uuid.UUID) ([]byte, error)
}
