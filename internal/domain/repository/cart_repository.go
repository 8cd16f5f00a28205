package repository

import (
	"context"

	"kampuskart/internal/domain/entity"

	"github.com/google/uuid"
)

// CartRepository persists carts as whole aggregates. Save is a
// read-modify-write of a single cart; concurrent saves of the same cart are
// last-write-wins.
type CartRepository interface {
	// FindByBuyer returns domainerrors.ErrCartNotFound when the buyer has no cart.
	FindByBuyer(ctx context.Context, buyerID uuid.UUID) (*entity.Cart, error)

	// Create inserts an empty cart and returns domainerrors.ErrCartAlreadyExists
	// when the buyer already has one.
	Create(ctx context.Context, cart *entity.Cart) error

	// Save replaces the stored items of an existing cart.
	Save(ctx context.Context, cart *entity.Cart) error

	// DeleteByBuyer removes the cart of a deleted account. Missing carts are ignored.
	DeleteByBuyer(ctx context.Context, buyerID uuid.UUID) error
}
