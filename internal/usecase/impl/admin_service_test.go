package impl

import (
	"context"
	"testing"

	"kampuskart/internal/domain/entity"
	domainerrors "kampuskart/internal/domain/errors"
	"kampuskart/internal/domain/repository"
	"kampuskart/internal/domain/service"
	mockRepo "kampuskart/internal/mocks/repository"
	mockSvc "kampuskart/internal/mocks/service"
	mockUsecase "kampuskart/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminServiceFixtures struct {
	service   *adminService
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	images    *mockUsecase.MockImageUsecase
	publisher *mockSvc.MockEventPublisher
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	images := mockUsecase.NewMockImageUsecase(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	srv := NewAdminService(AdminServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Images:    images,
		Publisher: publisher,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	}).(*adminService)
	srv.now = fixedClock

	return adminServiceFixtures{
		service:   srv,
		txManager: txManager,
		userRepo:  userRepo,
		images:    images,
		publisher: publisher,
	}
}

func TestAdminService_ListUsers_AppliesPageDefaults(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	users := []*entity.User{newTestUser(entity.RoleBuyer, entity.SellerStatusNone)}

	fx.userRepo.EXPECT().
		List(ctx, repository.UserFilter{}, entity.Page{Number: 1, Size: 10}).
		Return(users, int64(23), nil)

	page, err := fx.service.ListUsers(ctx, entity.Page{})

	require.NoError(t, err)
	assert.Equal(t, users, page.Users)
	assert.Equal(t, int64(23), page.Total)
	assert.Equal(t, 3, page.TotalPages)
}

func TestAdminService_ListApplications_DefaultsToAllStatuses(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(f repository.UserFilter) bool {
			return len(f.SellerStatuses) == 3
		}), mock.Anything).
		Return(nil, int64(0), nil)

	_, err := fx.service.ListApplications(ctx, entity.SellerStatusNone, entity.Page{Number: 1, Size: 10})

	require.NoError(t, err)
}

func TestAdminService_ListApplications_RejectsUnknownStatus(t *testing.T) {
	fx := createTestAdminService(t)

	_, err := fx.service.ListApplications(context.Background(), entity.SellerStatus("archived"), entity.Page{})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAdminService_DeleteUser_CannotDeleteSelf(t *testing.T) {
	fx := createTestAdminService(t)
	id := uuid.New()

	err := fx.service.DeleteUser(context.Background(), id, id)

	assert.True(t, errors.Is(err, domainerrors.ErrCannotDeleteSelf))
}

func TestAdminService_DeleteUser_CascadesShopAndCart(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	adminID := uuid.New()
	seller := newTestUser(entity.RoleSeller, entity.SellerStatusApproved)
	seller.VerificationImageRef = "id.jpg"
	shop := newTestShop(seller.ID, "Crafts")
	product := newTestProduct(shop.ID, "3", 1)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockShopRepo := mockRepo.NewMockShopRepository(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewShopRepository().Return(mockShopRepo)
			mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)
			mockFactory.EXPECT().NewCartRepository().Return(mockCartRepo)

			mockUserRepo.EXPECT().FindByID(ctx, seller.ID).Return(seller, nil)
			mockShopRepo.EXPECT().FindByOwner(ctx, seller.ID).Return(shop, nil)
			mockProductRepo.EXPECT().ListByShop(ctx, shop.ID).Return([]*entity.Product{product}, nil)
			mockProductRepo.EXPECT().DeleteByShop(ctx, shop.ID).Return(int64(1), nil)
			mockShopRepo.EXPECT().Delete(ctx, shop.ID).Return(nil)
			mockCartRepo.EXPECT().DeleteByBuyer(ctx, seller.ID).Return(nil)
			mockUserRepo.EXPECT().Delete(ctx, seller.ID).Return(nil)

			return fn(mockFactory)
		})

	fx.images.EXPECT().
		Discard(ctx, []string{"id.jpg", "a.png", "b.png", "Crafts-logo.png"}).
		Return()
	fx.publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(e *service.DomainEvent) bool {
			return e.Type == service.EventUserDeleted && e.AggregateID == seller.ID.String()
		})).
		Return(nil)

	err := fx.service.DeleteUser(ctx, adminID, seller.ID)

	require.NoError(t, err)
}

func TestAdminService_DeleteUser_BuyerWithoutShop(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	buyer := newTestUser(entity.RoleBuyer, entity.SellerStatusNone)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockShopRepo := mockRepo.NewMockShopRepository(t)
			mockCartRepo := mockRepo.NewMockCartRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewShopRepository().Return(mockShopRepo)
			mockFactory.EXPECT().NewProductRepository().Return(mockRepo.NewMockProductRepository(t))
			mockFactory.EXPECT().NewCartRepository().Return(mockCartRepo)

			mockUserRepo.EXPECT().FindByID(ctx, buyer.ID).Return(buyer, nil)
			mockShopRepo.EXPECT().FindByOwner(ctx, buyer.ID).Return(nil, domainerrors.ErrShopNotFound)
			mockCartRepo.EXPECT().DeleteByBuyer(ctx, buyer.ID).Return(nil)
			mockUserRepo.EXPECT().Delete(ctx, buyer.ID).Return(nil)

			return fn(mockFactory)
		})

	fx.images.EXPECT().Discard(ctx, mock.Anything).Return()
	fx.publisher.EXPECT().Publish(ctx, mock.Anything).Return(errors.New("broker down"))

	err := fx.service.DeleteUser(ctx, uuid.New(), buyer.ID)

	require.NoError(t, err)
}

func TestAdminService_DeleteUser_NotFound(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewShopRepository().Return(mockRepo.NewMockShopRepository(t))
			mockFactory.EXPECT().NewProductRepository().Return(mockRepo.NewMockProductRepository(t))
			mockFactory.EXPECT().NewCartRepository().Return(mockRepo.NewMockCartRepository(t))

			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, domainerrors.ErrUserNotFound)

			return fn(mockFactory)
		})

	err := fx.service.DeleteUser(ctx, uuid.New(), userID)

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAdminService_ReviewApplication(t *testing.T) {
	t.Run("approve pending", func(t *testing.T) {
		fx := createTestAdminService(t)
		ctx := context.Background()
		user := newTestUser(entity.RoleBuyer, entity.SellerStatusPending)

		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.userRepo.EXPECT().Update(ctx, user).Return(nil)
		fx.publisher.EXPECT().
			Publish(ctx, mock.MatchedBy(func(e *service.DomainEvent) bool {
				return e.Type == service.EventSellerApplicationReviewed && e.Attributes["status"] == "approved"
			})).
			Return(nil)

		got, err := fx.service.ReviewApplication(ctx, user.ID, entity.SellerStatusApproved)

		require.NoError(t, err)
		assert.Equal(t, entity.RoleSeller, got.Role)
		assert.True(t, got.IsVerified)
	})

	t.Run("reject already rejected keeps role", func(t *testing.T) {
		fx := createTestAdminService(t)
		ctx := context.Background()
		user := newTestUser(entity.RoleBuyer, entity.SellerStatusRejected)

		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.userRepo.EXPECT().Update(ctx, user).Return(nil)
		fx.publisher.EXPECT().Publish(ctx, mock.Anything).Return(nil)

		got, err := fx.service.ReviewApplication(ctx, user.ID, entity.SellerStatusRejected)

		require.NoError(t, err)
		assert.Equal(t, entity.RoleBuyer, got.Role)
		assert.Equal(t, entity.SellerStatusRejected, got.SellerStatus)
	})

	t.Run("approve without application", func(t *testing.T) {
		fx := createTestAdminService(t)
		ctx := context.Background()
		user := newTestUser(entity.RoleBuyer, entity.SellerStatusNone)

		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

		_, err := fx.service.ReviewApplication(ctx, user.ID, entity.SellerStatusApproved)

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
	})

	t.Run("unsupported status", func(t *testing.T) {
		fx := createTestAdminService(t)
		ctx := context.Background()
		user := newTestUser(entity.RoleBuyer, entity.SellerStatusPending)

		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

		_, err := fx.service.ReviewApplication(ctx, user.ID, entity.SellerStatusPending)

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}
