package usecase

import (
	"context"
	"time"

	"kampuskart/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to create an account. Requesting the
// seller role creates a buyer with a pending seller application, which needs the
// student ID fields.
type RegisterInput struct {
	FirstName        string
	LastName         string
	Email            string
	Password         string
	Role             entity.Role
	StudentIDNumber  string
	StudentIDPicture *UploadInput
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput holds the editable profile fields.
type UpdateProfileInput struct {
	FirstName string
	LastName  string
}

// ChangePasswordInput defines a self-service password change.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// ProvisionAdminInput defines an out-of-band admin account.
type ProvisionAdminInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// --- Output DTOs ---

// AuthOutput returns the generated tokens after registration, login or refresh.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    time.Duration
	User         *entity.User
}

// AuthUsecase covers account creation, credentials and session resolution.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthOutput, error)
	CheckEmail(ctx context.Context, email string) (bool, error)

	// ResolveSession verifies an access token and re-reads the account so that
	// role and seller status changes apply without a new login.
	ResolveSession(ctx context.Context, accessToken string) (*entity.Session, error)

	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error

	// ProvisionAdmin creates an admin account or promotes an existing one.
	// created reports which of the two happened.
	ProvisionAdmin(ctx context.Context, input *ProvisionAdminInput) (user *entity.User, created bool, err error)
}
