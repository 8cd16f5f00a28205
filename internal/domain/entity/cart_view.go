package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartView is the derived, read-only shape of a cart returned to clients.
type CartView struct {
	CartID        uuid.UUID
	BuyerID       uuid.UUID
	Items         []CartLine
	Shops         []ShopGroup
	TotalItems    int
	CartTotal     decimal.Decimal
	SelectedItems int
	SelectedTotal decimal.Decimal
	UpdatedAt     time.Time
}

// CartLine is a cart item joined with the live state of its product and shop.
type CartLine struct {
	ItemID      uuid.UUID
	ProductID   uuid.UUID
	ShopID      uuid.UUID
	ProductName string
	Price       decimal.Decimal
	Images      []string
	FeaturedIdx int
	Quantity    int
	LineTotal   decimal.Decimal
	Stock       int  // Live stock, 0 when the product is gone.
	Available   bool // False when the product no longer exists.
	Selected    bool
	ShopName    string
	ShopLogo    string
	AddedAt     time.Time
}

// ShopGroup holds the lines of one shop with its subtotals.
type ShopGroup struct {
	ShopID           uuid.UUID
	ShopName         string
	ShopLogo         string
	Items            []CartLine
	Subtotal         decimal.Decimal
	SelectedSubtotal decimal.Decimal
	SelectedCount    int
	AllSelected      bool
}

// CartLookup carries the live products and shops referenced by a cart, keyed by id.
type CartLookup struct {
	Products map[uuid.UUID]*Product
	Shops    map[uuid.UUID]*Shop
}

// ComputeView groups the cart by shop, in the order shops first appear, and
// computes totals over all items and over the selected ones. Totals use the
// snapshot price. Selection ids that are not in the cart are ignored.
func ComputeView(cart *Cart, selected map[uuid.UUID]struct{}, lookup CartLookup) *CartView {
	view := &CartView{
		CartID:        cart.ID,
		BuyerID:       cart.BuyerID,
		Items:         make([]CartLine, 0, len(cart.Items)),
		Shops:         []ShopGroup{},
		CartTotal:     decimal.Zero,
		SelectedTotal: decimal.Zero,
		UpdatedAt:     cart.UpdatedAt,
	}

	groupIdx := make(map[uuid.UUID]int)

	for _, item := range cart.Items {
		line := resolveLine(item, lookup)
		_, line.Selected = selected[item.ID]

		idx, ok := groupIdx[item.ShopID]
		if !ok {
			idx = len(view.Shops)
			groupIdx[item.ShopID] = idx
			view.Shops = append(view.Shops, ShopGroup{
				ShopID:           item.ShopID,
				ShopName:         line.ShopName,
				ShopLogo:         line.ShopLogo,
				Subtotal:         decimal.Zero,
				SelectedSubtotal: decimal.Zero,
			})
		}

		group := &view.Shops[idx]
		group.Items = append(group.Items, line)
		group.Subtotal = group.Subtotal.Add(line.LineTotal)

		view.TotalItems += line.Quantity
		view.CartTotal = view.CartTotal.Add(line.LineTotal)

		if line.Selected {
			group.SelectedSubtotal = group.SelectedSubtotal.Add(line.LineTotal)
			group.SelectedCount++
			view.SelectedItems += line.Quantity
			view.SelectedTotal = view.SelectedTotal.Add(line.LineTotal)
		}

		view.Items = append(view.Items, line)
	}

	for i := range view.Shops {
		view.Shops[i].AllSelected = view.Shops[i].SelectedCount == len(view.Shops[i].Items)
	}

	return view
}

func resolveLine(item *CartItem, lookup CartLookup) CartLine {
	line := CartLine{
		ItemID:      item.ID,
		ProductID:   item.ProductID,
		ShopID:      item.ShopID,
		ProductName: item.Snapshot.ProductName,
		Price:       item.Snapshot.ProductPrice,
		Images:      item.Snapshot.ProductImages,
		Quantity:    item.Quantity,
		LineTotal:   item.LineTotal(),
		ShopName:    item.Snapshot.ShopName,
		ShopLogo:    item.Snapshot.ShopLogo,
		AddedAt:     item.AddedAt,
	}

	if product, ok := lookup.Products[item.ProductID]; ok && product != nil {
		line.Available = true
		line.Stock = product.Stock
		// The featured index belongs to the live image list, and replaced
		// snapshot images may already be gone from storage.
		if len(product.ImageRefs) > 0 {
			line.Images = product.ImageRefs
			line.FeaturedIdx = product.FeaturedImageIndex
		}
		if line.FeaturedIdx < 0 || line.FeaturedIdx >= len(line.Images) {
			line.FeaturedIdx = 0
		}
	}

	if shop, ok := lookup.Shops[item.ShopID]; ok && shop != nil {
		line.ShopName = shop.Name
		line.ShopLogo = shop.LogoRef
	}

	return line
}
