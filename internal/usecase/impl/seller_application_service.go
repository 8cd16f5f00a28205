package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

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

type sellerApplicationService struct {
	userRepo  repository.UserRepository
	images    usecase.ImageUsecase
	publisher service.EventPublisher
	now       func() time.Time
	logger    *slog.Logger
}

// SellerApplicationServiceParams holds dependencies for SellerApplicationService, injected by Fx.
type SellerApplicationServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	Images    usecase.ImageUsecase
	Publisher service.EventPublisher `optional:"true"`
	Logger    *slog.Logger
}

// NewSellerApplicationService creates a new seller application service.
func NewSellerApplicationService(params SellerApplicationServiceParams) usecase.SellerApplicationUsecase {
	return &sellerApplicationService{
		userRepo:  params.UserRepo,
		images:    params.Images,
		publisher: params.Publisher,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *sellerApplicationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Apply files or refiles a seller application for a buyer.
func (srv *sellerApplicationService) Apply(ctx context.Context, userID uuid.UUID, input *usecase.ApplyInput) (*entity.User, error) {
	if strings.TrimSpace(input.StudentIDNumber) == "" {
		return nil, domainerrors.NewValidationError("Student ID number is required")
	}

	if input.StudentIDPicture == nil {
		return nil, domainerrors.NewValidationError("Student ID picture is required")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	// Check the transition before paying for the upload.
	if user.Role != entity.RoleBuyer {
		return nil, domainerrors.ErrInvalidStatusTransition.WithMessage("Only buyers can apply to become sellers")
	}

	ref, err := srv.images.Store(ctx, input.StudentIDPicture)
	if err != nil {
		return nil, err
	}

	previousRef := user.VerificationImageRef

	if err := user.ApplyForSeller(input.StudentIDNumber, ref, srv.now()); err != nil {
		srv.images.Discard(ctx, ref)

		return nil, err
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.images.Discard(ctx, ref)

		return nil, errors.Wrap(err, "failed to save seller application")
	}

	if previousRef != "" && previousRef != ref {
		srv.images.Discard(ctx, previousRef)
	}

	srv.log(ctx).Info("Seller application submitted", slog.String("userID", user.ID.String()))

	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventSellerApplicationSubmitted, user.ID.String(), map[string]string{
		"email": user.Email,
	})

	return user, nil
}

// GetMyApplication returns the caller's account, which carries the application state.
func (srv *sellerApplicationService) GetMyApplication(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
