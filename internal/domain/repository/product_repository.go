package repository

import (
	"context"

	"kampuskart/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductRepository persists products. Lookups that miss return
// domainerrors.ErrProductNotFound.
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDs returns the products that exist among ids, in no particular order.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// ListByShop returns a shop's products, newest first.
	ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.Product, error)

	// List returns a marketplace page, newest first, and the total product count.
	List(ctx context.Context, page entity.Page) ([]*entity.Product, int64, error)

	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByShop removes every product of a shop and returns how many were removed.
	DeleteByShop(ctx context.Context, shopID uuid.UUID) (int64, error)
}
