package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeView(t *testing.T) {
	now := time.Now()
	shopA := newTestShop("alpha")
	shopB := newTestShop("beta")
	pA1 := newTestProduct(shopA, "10.00", 10)
	pA2 := newTestProduct(shopA, "2.50", 10)
	pB := newTestProduct(shopB, "7.25", 10)

	buildCart := func(t *testing.T) *Cart {
		cart := NewCart(uuid.New(), now)
		for _, add := range []struct {
			p   *Product
			s   *Shop
			qty int
		}{{pA1, shopA, 1}, {pB, shopB, 2}, {pA2, shopA, 4}} {
			_, err := cart.AddItem(add.p, add.s, add.qty, now)
			require.NoError(t, err)
		}

		return cart
	}

	lookup := CartLookup{
		Products: map[uuid.UUID]*Product{pA1.ID: pA1, pA2.ID: pA2, pB.ID: pB},
		Shops:    map[uuid.UUID]*Shop{shopA.ID: shopA, shopB.ID: shopB},
	}

	t.Run("empty cart", func(t *testing.T) {
		view := ComputeView(NewCart(uuid.New(), now), nil, lookup)

		assert.Empty(t, view.Items)
		assert.Empty(t, view.Shops)
		assert.Zero(t, view.TotalItems)
		assert.True(t, view.CartTotal.IsZero())
		assert.True(t, view.SelectedTotal.IsZero())
	})

	t.Run("groups by shop in first appearance order", func(t *testing.T) {
		cart := buildCart(t)
		view := ComputeView(cart, nil, lookup)

		require.Len(t, view.Shops, 2)
		assert.Equal(t, shopA.ID, view.Shops[0].ShopID)
		assert.Equal(t, shopB.ID, view.Shops[1].ShopID)
		assert.Len(t, view.Shops[0].Items, 2)
		assert.Len(t, view.Shops[1].Items, 1)
		assert.True(t, decimal.RequireFromString("20.00").Equal(view.Shops[0].Subtotal))
		assert.True(t, decimal.RequireFromString("14.50").Equal(view.Shops[1].Subtotal))
	})

	t.Run("total items equals sum of quantities", func(t *testing.T) {
		cart := buildCart(t)
		view := ComputeView(cart, nil, lookup)

		assert.Equal(t, cart.TotalQuantity(), view.TotalItems)
		assert.Equal(t, 7, view.TotalItems)
		assert.True(t, decimal.RequireFromString("34.50").Equal(view.CartTotal))
	})

	t.Run("selecting one shop only counts that shop", func(t *testing.T) {
		cart := buildCart(t)
		selected := map[uuid.UUID]struct{}{
			cart.Items[0].ID: {},
			cart.Items[2].ID: {},
		}

		view := ComputeView(cart, selected, lookup)

		assert.True(t, view.Shops[0].SelectedSubtotal.Equal(view.Shops[0].Subtotal))
		assert.True(t, view.SelectedTotal.Equal(view.Shops[0].Subtotal))
		assert.True(t, decimal.RequireFromString("34.50").Equal(view.CartTotal))
		assert.Equal(t, 5, view.SelectedItems)
		assert.True(t, view.Shops[0].AllSelected)
		assert.False(t, view.Shops[1].AllSelected)
		assert.True(t, view.Shops[1].SelectedSubtotal.IsZero())
	})

	t.Run("unknown selection ids are ignored", func(t *testing.T) {
		cart := buildCart(t)
		view := ComputeView(cart, map[uuid.UUID]struct{}{uuid.New(): {}}, lookup)

		assert.Zero(t, view.SelectedItems)
		assert.True(t, view.SelectedTotal.IsZero())
	})

	t.Run("live data overrides snapshot for display", func(t *testing.T) {
		cart := buildCart(t)
		renamed := *shopB
		renamed.Name = "beta renamed"
		restocked := *pB
		restocked.Stock = 1

		view := ComputeView(cart, nil, CartLookup{
			Products: map[uuid.UUID]*Product{pB.ID: &restocked},
			Shops:    map[uuid.UUID]*Shop{shopB.ID: &renamed},
		})

		line := view.Items[1]
		assert.True(t, line.Available)
		assert.Equal(t, 1, line.Stock)
		assert.Equal(t, "beta renamed", line.ShopName)
		assert.Equal(t, "beta renamed", view.Shops[1].ShopName)

		gone := view.Items[0]
		assert.False(t, gone.Available)
		assert.Zero(t, gone.Stock)
		assert.Equal(t, "alpha", gone.ShopName)
	})
	t.Run("featured image follows the live image list", func(t *testing.T) {
		cart := buildCart(t)
		reshot := *pB
		reshot.ImageRefs = []string{"c.png", "d.png", "e.png"}
		reshot.FeaturedImageIndex = 2

		view := ComputeView(cart, nil, CartLookup{
			Products: map[uuid.UUID]*Product{pB.ID: &reshot},
		})

		line := view.Items[1]
		assert.Equal(t, []string{"c.png", "d.png", "e.png"}, line.Images)
		assert.Equal(t, 2, line.FeaturedIdx)
		assert.Equal(t, "e.png", line.Images[line.FeaturedIdx])

		gone := view.Items[0]
		assert.Equal(t, []string{"a.png", "b.png"}, gone.Images)
		assert.Zero(t, gone.FeaturedIdx)
	})
}
