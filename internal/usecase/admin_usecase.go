package usecase

import (
	"context"

	"kampuskart/internal/domain/entity"

	"github.com/google/uuid"
)

// UserPage is a page of accounts.
type UserPage struct {
	Users      []*entity.User
	Page       entity.Page
	Total      int64
	TotalPages int
}

// AdminUsecase covers account management and seller application review.
type AdminUsecase interface {
	ListUsers(ctx context.Context, page entity.Page) (*UserPage, error)

	// DeleteUser removes an account together with its shop and cart.
	// Admins cannot delete themselves.
	DeleteUser(ctx context.Context, actorID, userID uuid.UUID) error

	// ListApplications lists accounts with a seller application. An empty
	// status lists pending, approved and rejected applications together.
	ListApplications(ctx context.Context, status entity.SellerStatus, page entity.Page) (*UserPage, error)

	// ReviewApplication approves or rejects a pending application.
	ReviewApplication(ctx context.Context, userID uuid.UUID, status entity.SellerStatus) (*entity.User, error)
}
