package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	deliverycontext "kampuskart/internal/delivery/context"
	"kampuskart/internal/domain/entity"
	domainerrors "kampuskart/internal/domain/errors"
	"kampuskart/internal/domain/repository"
	"kampuskart/internal/domain/service"
	"kampuskart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	images       usecase.ImageUsecase
	publisher    service.EventPublisher
	now          func() time.Time
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Images       usecase.ImageUsecase
	Publisher    service.EventPublisher `optional:"true"`
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		images:       params.Images,
		publisher:    params.Publisher,
		now:          time.Now,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a buyer account. Asking for the seller role files a seller
// application in the same step; the account stays a buyer until reviewed.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(input.Email)

	if err := validateRegistration(input, email); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", email), slog.Any("role", input.Role))

	exists, err := srv.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check email")
	}
	if exists {
		return nil, domainerrors.ErrUserAlreadyExists.WithMessage("Email is already registered")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	now := srv.now()
	user := &entity.User{
		ID:           uuid.New(),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        email,
		PasswordHash: hash,
		Role:         entity.RoleBuyer,
		SellerStatus: entity.SellerStatusNone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if input.Role == entity.RoleSeller {
		ref, err := srv.images.Store(ctx, input.StudentIDPicture)
		if err != nil {
			return nil, err
		}

		if err := user.ApplyForSeller(input.StudentIDNumber, ref, now); err != nil {
			srv.images.Discard(ctx, ref)

			return nil, err
		}
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.images.Discard(ctx, user.VerificationImageRef)
		srv.log(ctx).Error("Failed to create user", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user")
	}

	if user.SellerStatus == entity.SellerStatusPending {
		publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventSellerApplicationSubmitted, user.ID.String(), map[string]string{
			"email": user.Email,
		})
	}

	srv.log(ctx).Debug("Registration completed", slog.String("userID", user.ID.String()))

	return srv.issueTokens(user)
}

func validateRegistration(input *usecase.RegisterInput, email string) error {
	switch {
	case strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "":
		return domainerrors.NewValidationError("First and last name are required")
	case email == "":
		return domainerrors.NewValidationError("Email is required")
	case utf8.RuneCountInString(input.Password) < entity.MinPasswordLength:
		return domainerrors.NewValidationError("Password must be at least 6 characters")
	}

	switch input.Role {
	case "", entity.RoleBuyer:
		input.Role = entity.RoleBuyer
	case entity.RoleSeller:
		if strings.TrimSpace(input.StudentIDNumber) == "" {
			return domainerrors.NewValidationError("Student ID number is required for seller registration")
		}
		if input.StudentIDPicture == nil {
			return domainerrors.NewValidationError("Student ID picture is required for seller registration")
		}
	default:
		return domainerrors.NewValidationError("Role must be buyer or seller")
	}

	return nil
}

// Login verifies credentials and issues a token pair.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(input.Email)

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, domainerrors.ErrUserNotFound) {
		srv.log(ctx).Info("Login with unknown email", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login with wrong password", slog.String("userID", user.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issueTokens(user)
}

// Refresh exchanges a refresh token for a new pair carrying the current role.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.AuthOutput, error) {
	claims, err := srv.tokenService.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}

	if claims.Type != service.TokenTypeRefresh {
		return nil, domainerrors.ErrInvalidToken
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, domainerrors.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidToken
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return srv.issueTokens(user)
}

// CheckEmail reports whether an account already uses email.
func (srv *authService) CheckEmail(ctx context.Context, email string) (bool, error) {
	normalized := entity.NormalizeEmail(email)
	if normalized == "" {
		return false, domainerrors.NewValidationError("Email is required")
	}

	exists, err := srv.userRepo.ExistsByEmail(ctx, normalized)
	if err != nil {
		return false, errors.Wrap(err, "failed to check email")
	}

	return exists, nil
}

// ResolveSession turns a bearer token into the caller's current session.
func (srv *authService) ResolveSession(ctx context.Context, accessToken string) (*entity.Session, error) {
	claims, err := srv.tokenService.ValidateToken(accessToken)
	if err != nil {
		return nil, err
	}

	if claims.Type != service.TokenTypeAccess {
		return nil, domainerrors.ErrInvalidToken
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, domainerrors.ErrUserNotFound) {
		return nil, domainerrors.ErrUnauthorized.WithMessage("Account no longer exists")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve session")
	}

	return user.Session(), nil
}

// GetProfile returns the caller's account.
func (srv *authService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfile changes the caller's name.
func (srv *authService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	if firstName == "" || lastName == "" {
		return nil, domainerrors.NewValidationError("First and last name are required")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	user.FirstName = firstName
	user.LastName = lastName
	user.UpdatedAt = srv.now()

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	return user, nil
}

// ChangePassword replaces the caller's password after verifying the current one.
func (srv *authService) ChangePassword(ctx context.Context, userID uuid.UUID, input *usecase.ChangePasswordInput) error {
	if utf8.RuneCountInString(input.NewPassword) < entity.MinPasswordLength {
		return domainerrors.NewValidationError("New password must be at least 6 characters")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		return domainerrors.ErrInvalidCredentials.WithMessage("Current password is incorrect")
	}

	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	user.PasswordHash = hash
	user.UpdatedAt = srv.now()

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Password changed", slog.String("userID", userID.String()))

	return nil
}

// ProvisionAdmin creates an admin or promotes the account that owns the email.
func (srv *authService) ProvisionAdmin(ctx context.Context, input *usecase.ProvisionAdminInput) (*entity.User, bool, error) {
	email := entity.NormalizeEmail(input.Email)
	if email == "" {
		return nil, false, domainerrors.NewValidationError("Email is required")
	}

	if utf8.RuneCountInString(input.Password) < entity.MinPasswordLength {
		return nil, false, domainerrors.NewValidationError("Password must be at least 6 characters")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to hash password")
	}

	now := srv.now()

	user, err := srv.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		user.PromoteToAdmin(now)
		user.PasswordHash = hash

		if err := srv.userRepo.Update(ctx, user); err != nil {
			return nil, false, errors.Wrap(err, "failed to promote user")
		}

		srv.log(ctx).Info("Existing account promoted to admin", slog.String("userID", user.ID.String()))

		return user, false, nil
	case !errors.Is(err, domainerrors.ErrUserNotFound):
		return nil, false, errors.Wrap(err, "failed to find user")
	}

	user = &entity.User{
		ID:           uuid.New(),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
	}
	user.PromoteToAdmin(now)

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, false, errors.Wrap(err, "failed to create admin")
	}

	srv.log(ctx).Info("Admin account created", slog.String("userID", user.ID.String()))

	return user, true, nil
}

func (srv *authService) issueTokens(user *entity.User) (*usecase.AuthOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Role.String(), user.SellerStatus.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    srv.tokenService.GetAccessTokenDuration(),
		User:         user,
	}, nil
}
