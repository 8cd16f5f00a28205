package usecase

import (
	"context"

	"kampuskart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductInput defines a new product listing.
type CreateProductInput struct {
	Name               string
	Description        string
	Price              decimal.Decimal
	Stock              int
	FeaturedImageIndex int
	Images             []*UploadInput
}

// UpdateProductInput holds optional product changes. When Images is non-empty
// the new images replace all existing ones.
type UpdateProductInput struct {
	Name               *string
	Description        *string
	Price              *decimal.Decimal
	Stock              *int
	FeaturedImageIndex *int
	Images             []*UploadInput
}

// ProductListing is a product together with the shop that sells it.
type ProductListing struct {
	Product *entity.Product
	Shop    *entity.Shop
}

// ProductPage is a page of the marketplace.
type ProductPage struct {
	Items      []*ProductListing
	Page       entity.Page
	Total      int64
	TotalPages int
}

// ProductUsecase manages a seller's products and the public marketplace.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, ownerID uuid.UUID, input *CreateProductInput) (*entity.Product, error)
	ListMyProducts(ctx context.Context, ownerID uuid.UUID) ([]*entity.Product, error)
	UpdateProduct(ctx context.Context, ownerID, productID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, ownerID, productID uuid.UUID) error

	ListMarketplace(ctx context.Context, page entity.Page) (*ProductPage, error)
	GetProduct(ctx context.Context, productID uuid.UUID) (*ProductListing, error)
}
