package postgres

import (
	"context"
	"net/http"
	"testing"
	"time"

	"kampuskart/internal/domain/entity"
	domainerrors "kampuskart/internal/domain/errors"
	"kampuskart/internal/domain/repository"
	"kampuskart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))

	return db
}

func newUser(email string, createdAt time.Time) *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        email,
		PasswordHash: "hashed",
		Role:         entity.RoleBuyer,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
}

func newShop(ownerID uuid.UUID, name string) *entity.Shop {
	return &entity.Shop{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        name,
		Description: "Second-hand books",
		LogoRef:     "logo.png",
	}
}

func newProduct(shopID uuid.UUID, name string, createdAt time.Time) *entity.Product {
	return &entity.Product{
		ID:                 uuid.New(),
		ShopID:             shopID,
		Name:               name,
		Price:              decimal.RequireFromString("12.50"),
		Stock:              4,
		ImageRefs:          []string{"a.png", "b.png"},
		FeaturedImageIndex: 1,
		CreatedAt:          createdAt,
		UpdatedAt:          createdAt,
	}
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	first := newUser("ada@campus.edu", base)
	require.NoError(t, repo.Create(ctx, first))

	t.Run("duplicate email", func(t *testing.T) {
		err := repo.Create(ctx, newUser("ada@campus.edu", base))
		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})

	t.Run("find by email and id", func(t *testing.T) {
		byEmail, err := repo.FindByEmail(ctx, "ada@campus.edu")
		require.NoError(t, err)
		assert.Equal(t, first.ID, byEmail.ID)

		byID, err := repo.FindByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "Lovelace", byID.LastName)
		assert.Equal(t, entity.SellerStatusNone, byID.SellerStatus)

		_, err = repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("exists by email", func(t *testing.T) {
		exists, err := repo.ExistsByEmail(ctx, "ada@campus.edu")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByEmail(ctx, "bob@campus.edu")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("update application", func(t *testing.T) {
		require.NoError(t, first.ApplyForSeller("S-100", "id.png", base.Add(time.Hour)))
		require.NoError(t, repo.Update(ctx, first))

		stored, err := repo.FindByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.SellerStatusPending, stored.SellerStatus)
		assert.Equal(t, "S-100", stored.StudentIDNumber)
		require.NotNil(t, stored.ApplicationDate)
	})

	t.Run("update missing user", func(t *testing.T) {
		err := repo.Update(ctx, newUser("ghost@campus.edu", base))
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("list filters by status newest first", func(t *testing.T) {
		second := newUser("bob@campus.edu", base.Add(2*time.Hour))
		require.NoError(t, second.ApplyForSeller("S-200", "bob.png", base.Add(2*time.Hour)))
		require.NoError(t, repo.Create(ctx, second))
		require.NoError(t, repo.Create(ctx, newUser("cy@campus.edu", base.Add(3*time.Hour))))

		users, total, err := repo.List(ctx, repository.UserFilter{
			SellerStatuses: []entity.SellerStatus{entity.SellerStatusPending},
		}, entity.Page{Number: 1, Size: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, users, 2)
		assert.Equal(t, second.ID, users[0].ID)

		users, total, err = repo.List(ctx, repository.UserFilter{}, entity.Page{Number: 2, Size: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, users, 1)
		assert.Equal(t, first.ID, users[0].ID)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, first.ID))
		assert.ErrorIs(t, repo.Delete(ctx, first.ID), domainerrors.ErrUserNotFound)
	})
}

func TestShopAndProductRepository(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	shops := NewShopRepository(db)
	products := NewProductRepository(db)
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	ownerID := uuid.New()
	shop := newShop(ownerID, "Book Nook")
	require.NoError(t, shops.Create(ctx, shop))

	t.Run("one shop per owner", func(t *testing.T) {
		err := shops.Create(ctx, newShop(ownerID, "Second"))
		assert.ErrorIs(t, err, domainerrors.ErrShopAlreadyExists)
	})

	t.Run("find by owner and update", func(t *testing.T) {
		found, err := shops.FindByOwner(ctx, ownerID)
		require.NoError(t, err)
		assert.Equal(t, shop.ID, found.ID)

		found.Name = "Book Nook II"
		found.LogoRef = ""
		require.NoError(t, shops.Update(ctx, found))

		reloaded, err := shops.FindByID(ctx, shop.ID)
		require.NoError(t, err)
		assert.Equal(t, "Book Nook II", reloaded.Name)
		assert.Empty(t, reloaded.LogoRef)

		_, err = shops.FindByOwner(ctx, uuid.New())
		assert.ErrorIs(t, err, domainerrors.ErrShopNotFound)
	})

	older := newProduct(shop.ID, "Notebook", base)
	newer := newProduct(shop.ID, "Calculator", base.Add(time.Hour))
	require.NoError(t, products.Create(ctx, older))
	require.NoError(t, products.Create(ctx, newer))

	t.Run("product round trip", func(t *testing.T) {
		found, err := products.FindByID(ctx, older.ID)
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("12.50").Equal(found.Price))
		assert.Equal(t, []string{"a.png", "b.png"}, found.ImageRefs)
		assert.Equal(t, 1, found.FeaturedImageIndex)
	})

	t.Run("marketplace page newest first", func(t *testing.T) {
		page, total, err := products.List(ctx, entity.Page{Number: 1, Size: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, page, 1)
		assert.Equal(t, newer.ID, page[0].ID)
	})

	t.Run("find by ids skips missing", func(t *testing.T) {
		found, err := products.FindByIDs(ctx, []uuid.UUID{older.ID, uuid.New()})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, older.ID, found[0].ID)

		found, err = products.FindByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, found)
	})

	t.Run("update product", func(t *testing.T) {
		older.Stock = 0
		older.ImageRefs = []string{"c.png"}
		older.FeaturedImageIndex = 0
		require.NoError(t, products.Update(ctx, older))

		found, err := products.FindByID(ctx, older.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, found.Stock)
		assert.Equal(t, []string{"c.png"}, found.ImageRefs)
	})

	t.Run("delete by shop", func(t *testing.T) {
		removed, err := products.DeleteByShop(ctx, shop.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), removed)

		listed, err := products.ListByShop(ctx, shop.ID)
		require.NoError(t, err)
		assert.Empty(t, listed)

		assert.ErrorIs(t, products.Delete(ctx, older.ID), domainerrors.ErrProductNotFound)
		require.NoError(t, shops.Delete(ctx, shop.ID))
		assert.ErrorIs(t, shops.Delete(ctx, shop.ID), domainerrors.ErrShopNotFound)
	})
}

func TestCartRepository(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewCartRepository(db)
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	buyerID := uuid.New()
	shop := newShop(uuid.New(), "Book Nook")
	first := newProduct(shop.ID, "Notebook", now)
	second := newProduct(shop.ID, "Pen", now)

	_, err := repo.FindByBuyer(ctx, buyerID)
	require.ErrorIs(t, err, domainerrors.ErrCartNotFound)

	cart := entity.NewCart(buyerID, now)
	require.NoError(t, repo.Create(ctx, cart))
	assert.ErrorIs(t, repo.Create(ctx, entity.NewCart(buyerID, now)), domainerrors.ErrCartAlreadyExists)

	_, err = cart.AddItem(first, shop, 2, now)
	require.NoError(t, err)
	_, err = cart.AddItem(second, shop, 1, now.Add(time.Minute))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, cart))

	stored, err := repo.FindByBuyer(ctx, buyerID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 2)
	assert.Equal(t, first.ID, stored.Items[0].ProductID)
	assert.Equal(t, 2, stored.Items[0].Quantity)
	assert.Equal(t, "Book Nook", stored.Items[0].Snapshot.ShopName)
	assert.True(t, first.Price.Equal(stored.Items[0].Snapshot.ProductPrice))
	assert.Equal(t, second.ID, stored.Items[1].ProductID)

	stored.Items = stored.Items[1:]
	require.NoError(t, repo.Save(ctx, stored))

	reloaded, err := repo.FindByBuyer(ctx, buyerID)
	require.NoError(t, err)
	require.Len(t, reloaded.Items, 1)
	assert.Equal(t, second.ID, reloaded.Items[0].ProductID)

	assert.ErrorIs(t, repo.Save(ctx, entity.NewCart(uuid.New(), now)), domainerrors.ErrCartNotFound)

	require.NoError(t, repo.DeleteByBuyer(ctx, buyerID))
	require.NoError(t, repo.DeleteByBuyer(ctx, buyerID))

	var items int64
	require.NoError(t, db.Model(&model.CartItemModel{}).Count(&items).Error)
	assert.Zero(t, items)
}

func TestTransactionManagerRollsBack(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	txManager := NewTransactionManager(db)
	users := NewUserRepository(db)
	created := newUser("ada@campus.edu", time.Now())

	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewUserRepository().Create(ctx, created); err != nil {
			return err
		}

		return domainerrors.ErrCannotDeleteSelf
	})
	require.ErrorIs(t, err, domainerrors.ErrCannotDeleteSelf)

	_, err = users.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	err = txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewUserRepository().Create(ctx, created)
	})
	require.NoError(t, err)

	_, err = users.FindByID(ctx, created.ID)
	assert.NoError(t, err)
}

func TestTransactionManagerReportsUnavailableDatabase(t *testing.T) {
	db := setupTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	called := false
	err = NewTransactionManager(db).Execute(context.Background(), func(repository.RepositoryFactory) error {
		called = true

		return nil
	})

	require.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
	assert.False(t, called)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.Equal(t, "TRANSACTION_FAILED", appErr.ErrorCode())
}
