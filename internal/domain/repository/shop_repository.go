package repository

import (
	"context"

	"kampuskart/internal/domain/entity"

	"github.com/google/uuid"
)

// ShopRepository persists shops. Implementations enforce one shop per owner and
// return domainerrors.ErrShopAlreadyExists on a second insert for the same owner.
type ShopRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Shop, error)
	// FindByIDs returns the shops that exist among ids, in no particular order.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Shop, error)
	List(ctx context.Context) ([]*entity.Shop, error)
	Create(ctx context.Context, shop *entity.Shop) error
	Update(ctx context.Context, shop *entity.Shop) error
	Delete(ctx context.Context, id uuid.UUID) error
}
