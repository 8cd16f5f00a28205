package impl

import (
	"io"
	"log/slog"
	"time"

	"kampuskart/config"
	"kampuskart/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var fixedNow = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock() time.Time {
	return fixedNow
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 4,
		},
		Marketplace: &config.MarketplaceConfig{
			DefaultPageSize: 12,
			MaxPageSize:     50,
			AdminPageSize:   10,
		},
		Blob: &config.BlobConfig{
			MaxUploadSize: "1KB",
		},
	}
}

func newTestShop(ownerID uuid.UUID, name string) *entity.Shop {
	return &entity.Shop{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        name,
		Description: name + " description",
		LogoRef:     name + "-logo.png",
		CreatedAt:   fixedNow,
		UpdatedAt:   fixedNow,
	}
}

func newTestProduct(shopID uuid.UUID, price string, stock int) *entity.Product {
	return &entity.Product{
		ID:          uuid.New(),
		ShopID:      shopID,
		Name:        "Notebook",
		Description: "A5 dotted",
		Price:       decimal.RequireFromString(price),
		Stock:       stock,
		ImageRefs:   []string{"a.png", "b.png"},
		CreatedAt:   fixedNow,
		UpdatedAt:   fixedNow,
	}
}

func newTestUser(role entity.Role, status entity.SellerStatus) *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@campus.edu",
		PasswordHash: "hashed",
		Role:         role,
		SellerStatus: status,
		CreatedAt:    fixedNow,
		UpdatedAt:    fixedNow,
	}
}
