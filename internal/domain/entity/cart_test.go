package entity

import (
	"testing"
	"time"

	domainerrors "kampuskart/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShop(name string) *Shop {
	return &Shop{ID: uuid.New(), OwnerID: uuid.New(), Name: name, Description: name + " shop", LogoRef: name + ".png"}
}

func newTestProduct(shop *Shop, price string, stock int) *Product {
	return &Product{
		ID:        uuid.New(),
		ShopID:    shop.ID,
		Name:      "item from " + shop.Name,
		Price:     decimal.RequireFromString(price),
		Stock:     stock,
		ImageRefs: []string{"a.png", "b.png"},
	}
}

func TestCart_AddItem(t *testing.T) {
	now := time.Now()
	shop := newTestShop("books")

	t.Run("adding the same product twice increments one line", func(t *testing.T) {
		cart := NewCart(uuid.New(), now)
		product := newTestProduct(shop, "12.50", 5)

		_, err := cart.AddItem(product, shop, 1, now)
		require.NoError(t, err)
		item, err := cart.AddItem(product, shop, 1, now)
		require.NoError(t, err)

		require.Len(t, cart.Items, 1)
		assert.Equal(t, 2, item.Quantity)
		assert.Equal(t, 2, cart.TotalQuantity())
	})

	t.Run("snapshot captures product and shop display fields", func(t *testing.T) {
		cart := NewCart(uuid.New(), now)
		product := newTestProduct(shop, "3.00", 1)

		item, err := cart.AddItem(product, shop, 1, now)
		require.NoError(t, err)

		assert.Equal(t, product.ID, item.ProductID)
		assert.Equal(t, shop.ID, item.ShopID)
		assert.Equal(t, product.Name, item.Snapshot.ProductName)
		assert.True(t, product.Price.Equal(item.Snapshot.ProductPrice))
		assert.Equal(t, []string{"a.png", "b.png"}, item.Snapshot.ProductImages)
		assert.Equal(t, "books", item.Snapshot.ShopName)
		assert.Equal(t, "books.png", item.Snapshot.ShopLogo)

		product.ImageRefs[0] = "changed.png"
		assert.Equal(t, "a.png", item.Snapshot.ProductImages[0])
	})

	t.Run("exceeding stock reports available stock", func(t *testing.T) {
		cart := NewCart(uuid.New(), now)
		product := newTestProduct(shop, "1.00", 3)

		_, err := cart.AddItem(product, shop, 4, now)

		var stockErr *domainerrors.OutOfStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 3, stockErr.AvailableStock)
		assert.Equal(t, 0, stockErr.CurrentQuantity)
		assert.Empty(t, cart.Items)
	})

	t.Run("existing quantity counts against stock", func(t *testing.T) {
		cart := NewCart(uuid.New(), now)
		product := newTestProduct(shop, "1.00", 3)

		_, err := cart.AddItem(product, shop, 2, now)
		require.NoError(t, err)

		_, err = cart.AddItem(product, shop, 2, now)

		var stockErr *domainerrors.OutOfStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 3, stockErr.AvailableStock)
		assert.Equal(t, 2, stockErr.CurrentQuantity)
		assert.Equal(t, 2, cart.Items[0].Quantity)
	})

	t.Run("quantity below one is rejected", func(t *testing.T) {
		cart := NewCart(uuid.New(), now)

		_, err := cart.AddItem(newTestProduct(shop, "1.00", 3), shop, 0, now)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestCart_SetQuantity(t *testing.T) {
	now := time.Now()
	shop := newTestShop("snacks")
	product := newTestProduct(shop, "2.00", 10)

	setup := func(t *testing.T) (*Cart, *CartItem) {
		cart := NewCart(uuid.New(), now)
		item, err := cart.AddItem(product, shop, 2, now)
		require.NoError(t, err)

		return cart, item
	}

	t.Run("overwrites quantity", func(t *testing.T) {
		cart, item := setup(t)

		removed, err := cart.SetQuantity(item.ID, 7, 10, now)
		require.NoError(t, err)
		assert.False(t, removed)
		assert.Equal(t, 7, item.Quantity)
	})

	t.Run("zero quantity removes the item", func(t *testing.T) {
		cart, item := setup(t)

		removed, err := cart.SetQuantity(item.ID, 0, 10, now)
		require.NoError(t, err)
		assert.True(t, removed)
		_, found := cart.FindItem(item.ID)
		assert.False(t, found)
	})

	t.Run("negative quantity removes the item", func(t *testing.T) {
		cart, item := setup(t)

		removed, err := cart.SetQuantity(item.ID, -3, 10, now)
		require.NoError(t, err)
		assert.True(t, removed)
		assert.Empty(t, cart.Items)
	})

	t.Run("live stock is enforced", func(t *testing.T) {
		cart, item := setup(t)

		_, err := cart.SetQuantity(item.ID, 5, 4, now)

		var stockErr *domainerrors.OutOfStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 4, stockErr.AvailableStock)
		assert.Equal(t, 2, item.Quantity)
	})

	t.Run("unknown item is not found", func(t *testing.T) {
		cart, _ := setup(t)

		_, err := cart.SetQuantity(uuid.New(), 1, 10, now)
		assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
	})
}

func TestCart_Remove(t *testing.T) {
	now := time.Now()
	shop := newTestShop("stationery")

	fill := func(t *testing.T, n int) *Cart {
		cart := NewCart(uuid.New(), now)
		for range n {
			_, err := cart.AddItem(newTestProduct(shop, "1.00", 5), shop, 1, now)
			require.NoError(t, err)
		}

		return cart
	}

	t.Run("single remove of a missing id is not found", func(t *testing.T) {
		cart := fill(t, 2)

		assert.ErrorIs(t, cart.RemoveItem(uuid.New(), now), domainerrors.ErrCartItemNotFound)
		assert.Len(t, cart.Items, 2)
	})

	t.Run("bulk remove of a missing id is a no-op", func(t *testing.T) {
		cart := fill(t, 2)
		before := cart.UpdatedAt

		removed := cart.RemoveItems([]uuid.UUID{uuid.New()}, now.Add(time.Hour))
		assert.Zero(t, removed)
		assert.Len(t, cart.Items, 2)
		assert.Equal(t, before, cart.UpdatedAt)
	})

	t.Run("bulk remove keeps order of the rest", func(t *testing.T) {
		cart := fill(t, 4)
		keep := []uuid.UUID{cart.Items[0].ID, cart.Items[2].ID}

		removed := cart.RemoveItems([]uuid.UUID{cart.Items[1].ID, cart.Items[3].ID, uuid.New()}, now)
		assert.Equal(t, 2, removed)
		require.Len(t, cart.Items, 2)
		assert.Equal(t, keep[0], cart.Items[0].ID)
		assert.Equal(t, keep[1], cart.Items[1].ID)
	})

	t.Run("clear keeps the cart", func(t *testing.T) {
		cart := fill(t, 3)
		id := cart.ID

		cart.Clear(now)
		assert.Equal(t, id, cart.ID)
		assert.NotNil(t, cart.Items)
		assert.Empty(t, cart.Items)
		assert.Zero(t, cart.TotalQuantity())
	})
}
