package usecase

import (
	"context"

	"kampuskart/internal/domain/entity"

	"github.com/google/uuid"
)

// CartSelection is the set of cart item ids the client has ticked. It only
// affects the selected totals of the returned view and is never stored.
type CartSelection []uuid.UUID

// Set converts the selection for entity.ComputeView.
func (s CartSelection) Set() map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(s))
	for _, id := range s {
		set[id] = struct{}{}
	}

	return set
}

// AddCartItemInput adds quantity units of a product.
type AddCartItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CartUsecase mutates a buyer's cart. Every call returns the recomputed view.
type CartUsecase interface {
	GetCart(ctx context.Context, buyerID uuid.UUID, selection CartSelection) (*entity.CartView, error)
	AddItem(ctx context.Context, buyerID uuid.UUID, input *AddCartItemInput, selection CartSelection) (*entity.CartView, error)

	// UpdateItem sets an item's quantity. A quantity below 1 removes the item.
	UpdateItem(ctx context.Context, buyerID, itemID uuid.UUID, quantity int, selection CartSelection) (*entity.CartView, error)

	// RemoveItem fails with ErrCartItemNotFound when the item is absent.
	RemoveItem(ctx context.Context, buyerID, itemID uuid.UUID, selection CartSelection) (*entity.CartView, error)

	// RemoveItems ignores ids that are not in the cart.
	RemoveItems(ctx context.Context, buyerID uuid.UUID, itemIDs []uuid.UUID, selection CartSelection) (*entity.CartView, error)

	Clear(ctx context.Context, buyerID uuid.UUID) (*entity.CartView, error)
}
