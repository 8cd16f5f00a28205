package impl

import (
	"context"
	"log/slog"
	"time"

	"kampuskart/config"
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

var applicationStatuses = []entity.SellerStatus{
	entity.SellerStatusPending,
	entity.SellerStatusApproved,
	entity.SellerStatusRejected,
}

type adminService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	images      usecase.ImageUsecase
	publisher   service.EventPublisher
	pageSize    int
	maxPageSize int
	now         func() time.Time
	logger      *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Images    usecase.ImageUsecase
	Publisher service.EventPublisher `optional:"true"`
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAdminService creates a new admin service.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	pageSize, maxPageSize := 10, 50
	if params.Config != nil && params.Config.Marketplace != nil {
		if params.Config.Marketplace.AdminPageSize > 0 {
			pageSize = params.Config.Marketplace.AdminPageSize
		}
		if params.Config.Marketplace.MaxPageSize > 0 {
			maxPageSize = params.Config.Marketplace.MaxPageSize
		}
	}

	return &adminService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		images:      params.Images,
		publisher:   params.Publisher,
		pageSize:    pageSize,
		maxPageSize: maxPageSize,
		now:         time.Now,
		logger:      params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns all accounts, newest first.
func (srv *adminService) ListUsers(ctx context.Context, page entity.Page) (*usecase.UserPage, error) {
	return srv.listUsers(ctx, repository.UserFilter{}, page)
}

// ListApplications lists accounts by seller application status.
func (srv *adminService) ListApplications(ctx context.Context, status entity.SellerStatus, page entity.Page) (*usecase.UserPage, error) {
	filter := repository.UserFilter{SellerStatuses: applicationStatuses}

	if status != entity.SellerStatusNone {
		if !status.IsValid() {
			return nil, domainerrors.NewValidationError("Invalid application status")
		}

		filter.SellerStatuses = []entity.SellerStatus{status}
	}

	return srv.listUsers(ctx, filter, page)
}

func (srv *adminService) listUsers(ctx context.Context, filter repository.UserFilter, page entity.Page) (*usecase.UserPage, error) {
	page = page.Clamp(srv.pageSize, srv.maxPageSize)

	users, total, err := srv.userRepo.List(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return &usecase.UserPage{
		Users:      users,
		Page:       page,
		Total:      total,
		TotalPages: page.TotalPages(total),
	}, nil
}

// DeleteUser removes an account, its shop with all products, and its cart.
func (srv *adminService) DeleteUser(ctx context.Context, actorID, userID uuid.UUID) error {
	if actorID == userID {
		return domainerrors.ErrCannotDeleteSelf
	}

	var orphanedImages []string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		shopRepo := repoFactory.NewShopRepository()
		productRepo := repoFactory.NewProductRepository()
		cartRepo := repoFactory.NewCartRepository()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		if user.VerificationImageRef != "" {
			orphanedImages = append(orphanedImages, user.VerificationImageRef)
		}

		shop, err := shopRepo.FindByOwner(ctx, userID)
		switch {
		case err == nil:
			refs, err := deleteShopCascade(ctx, shopRepo, productRepo, shop)
			if err != nil {
				return err
			}
			orphanedImages = append(orphanedImages, refs...)
		case !errors.Is(err, domainerrors.ErrShopNotFound):
			return errors.Wrap(err, "failed to find shop")
		}

		if err := cartRepo.DeleteByBuyer(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete cart")
		}

		if err := userRepo.Delete(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete user", slog.String("userID", userID.String()), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute user deletion transaction")
	}

	srv.images.Discard(ctx, orphanedImages...)

	srv.log(ctx).Info("User deleted",
		slog.String("userID", userID.String()),
		slog.String("actorID", actorID.String()),
		slog.Int("orphanedImages", len(orphanedImages)))

	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventUserDeleted, userID.String(), map[string]string{
		"actor_id": actorID.String(),
	})

	return nil
}

// ReviewApplication approves or rejects a pending seller application.
func (srv *adminService) ReviewApplication(ctx context.Context, userID uuid.UUID, status entity.SellerStatus) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	now := srv.now()

	switch status {
	case entity.SellerStatusApproved:
		err = user.ApproveSeller(now)
	case entity.SellerStatusRejected:
		err = user.RejectSeller(now)
	default:
		return nil, domainerrors.NewValidationError("Status must be approved or rejected")
	}

	if err != nil {
		return nil, err
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update seller status")
	}

	srv.log(ctx).Info("Seller application reviewed",
		slog.String("userID", userID.String()),
		slog.String("status", status.String()))

	publishEvent(ctx, srv.publisher, srv.log(ctx), service.EventSellerApplicationReviewed, userID.String(), map[string]string{
		"status": status.String(),
		"role":   user.Role.String(),
	})

	return user, nil
}

// deleteShopCascade removes a shop and its products and returns the image refs
// they held, for cleanup once the transaction has committed.
func deleteShopCascade(
	ctx context.Context,
	shopRepo repository.ShopRepository,
	productRepo repository.ProductRepository,
	shop *entity.Shop,
) ([]string, error) {
	products, err := productRepo.ListByShop(ctx, shop.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shop products")
	}

	var refs []string
	for _, product := range products {
		refs = append(refs, product.ImageRefs...)
	}

	if shop.LogoRef != "" {
		refs = append(refs, shop.LogoRef)
	}

	if _, err := productRepo.DeleteByShop(ctx, shop.ID); err != nil {
		return nil, errors.Wrap(err, "failed to delete shop products")
	}

	if err := shopRepo.Delete(ctx, shop.ID); err != nil {
		return nil, errors.Wrap(err, "failed to delete shop")
	}

	return refs, nil
}
