package usecase

import (
	"context"

	"kampuskart/internal/domain/entity"

	"github.com/google/uuid"
)

// ApplyInput is a seller application submitted by a buyer.
type ApplyInput struct {
	StudentIDNumber  string
	StudentIDPicture *UploadInput
}

// SellerApplicationUsecase lets buyers apply to become sellers.
type SellerApplicationUsecase interface {
	Apply(ctx context.Context, userID uuid.UUID, input *ApplyInput) (*entity.User, error)
	GetMyApplication(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
