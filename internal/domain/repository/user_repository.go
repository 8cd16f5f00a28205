// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"kampuskart/internal/domain/entity"

	"github.com/google/uuid"
)

// UserFilter narrows user listings.
type UserFilter struct {
	// SellerStatuses restricts results to these statuses when non-empty.
	SellerStatuses []entity.SellerStatus
}

// UserRepository defines the standard operations for user persistence.
// Implementations return domainerrors.ErrUserNotFound when a lookup misses and
// domainerrors.ErrUserAlreadyExists when an email is taken.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their (normalized) email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail reports whether an account uses the email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create persists a new user.
	Create(ctx context.Context, user *entity.User) error

	// Update overwrites an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns users newest first, together with the total matching count.
	List(ctx context.Context, filter UserFilter, page entity.Page) ([]*entity.User, int64, error)
}
