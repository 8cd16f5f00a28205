package entity

import (
	"slices"
	"time"

	domainerrors "kampuskart/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart is the single cart a buyer owns. Items keep insertion order.
type Cart struct {
	ID        uuid.UUID
	BuyerID   uuid.UUID
	Items     []*CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartItem is one product line in a cart. The snapshot fields are copied from the
// product and shop when the line is created and are only used for display; stock
// checks always go to the live product.
type CartItem struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	ShopID    uuid.UUID
	Quantity  int
	AddedAt   time.Time
	Snapshot  ProductSnapshot
}

// ProductSnapshot is the display data captured when an item enters a cart.
type ProductSnapshot struct {
	ProductName   string
	ProductPrice  decimal.Decimal
	ProductImages []string
	ProductStock  int
	ShopName      string
	ShopLogo      string
}

// NewCart creates an empty cart for buyerID.
func NewCart(buyerID uuid.UUID, now time.Time) *Cart {
	return &Cart{
		ID:        uuid.New(),
		BuyerID:   buyerID,
		Items:     []*CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// FindItem returns the item with the given id.
func (c *Cart) FindItem(itemID uuid.UUID) (*CartItem, bool) {
	idx := c.indexOf(itemID)
	if idx < 0 {
		return nil, false
	}

	return c.Items[idx], true
}

// FindByProduct returns the item holding productID.
func (c *Cart) FindByProduct(productID uuid.UUID) (*CartItem, bool) {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return item, true
		}
	}

	return nil, false
}

// AddItem puts qty units of product into the cart, incrementing an existing line
// for the same product. The resulting quantity may not exceed product.Stock.
func (c *Cart) AddItem(product *Product, shop *Shop, qty int, now time.Time) (*CartItem, error) {
	if qty < 1 {
		return nil, domainerrors.NewValidationError("Quantity must be at least 1")
	}

	existing, found := c.FindByProduct(product.ID)

	current := 0
	if found {
		current = existing.Quantity
	}

	if current+qty > product.Stock {
		return nil, domainerrors.NewOutOfStockError(product.Stock, current)
	}

	c.UpdatedAt = now

	if found {
		existing.Quantity += qty
		existing.Snapshot.ProductStock = product.Stock

		return existing, nil
	}

	item := &CartItem{
		ID:        uuid.New(),
		ProductID: product.ID,
		ShopID:    shop.ID,
		Quantity:  qty,
		AddedAt:   now,
		Snapshot: ProductSnapshot{
			ProductName:   product.Name,
			ProductPrice:  product.Price,
			ProductImages: slices.Clone(product.ImageRefs),
			ProductStock:  product.Stock,
			ShopName:      shop.Name,
			ShopLogo:      shop.LogoRef,
		},
	}
	c.Items = append(c.Items, item)

	return item, nil
}

// SetQuantity overwrites the quantity of an item. A quantity below 1 removes the
// item instead. liveStock must be the product's current stock.
func (c *Cart) SetQuantity(itemID uuid.UUID, qty, liveStock int, now time.Time) (removed bool, err error) {
	item, found := c.FindItem(itemID)
	if !found {
		return false, domainerrors.ErrCartItemNotFound
	}

	if qty < 1 {
		return true, c.RemoveItem(itemID, now)
	}

	if qty > liveStock {
		return false, domainerrors.NewOutOfStockError(liveStock, item.Quantity)
	}

	item.Quantity = qty
	item.Snapshot.ProductStock = liveStock
	c.UpdatedAt = now

	return false, nil
}

// RemoveItem deletes one item and fails when it is not in the cart.
func (c *Cart) RemoveItem(itemID uuid.UUID, now time.Time) error {
	idx := c.indexOf(itemID)
	if idx < 0 {
		return domainerrors.ErrCartItemNotFound
	}

	c.Items = slices.Delete(c.Items, idx, idx+1)
	c.UpdatedAt = now

	return nil
}

// RemoveItems deletes every listed item that is present. Unknown ids are ignored.
// It returns the number of items removed.
func (c *Cart) RemoveItems(itemIDs []uuid.UUID, now time.Time) int {
	before := len(c.Items)
	c.Items = slices.DeleteFunc(c.Items, func(item *CartItem) bool {
		return slices.Contains(itemIDs, item.ID)
	})

	removed := before - len(c.Items)
	if removed > 0 {
		c.UpdatedAt = now
	}

	return removed
}

// Clear empties the cart. The cart itself remains.
func (c *Cart) Clear(now time.Time) {
	c.Items = []*CartItem{}
	c.UpdatedAt = now
}

// TotalQuantity sums the quantities of all items.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}

	return total
}

// ProductIDs returns the distinct products referenced by the cart.
func (c *Cart) ProductIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(c.Items))
	for _, item := range c.Items {
		if !slices.Contains(ids, item.ProductID) {
			ids = append(ids, item.ProductID)
		}
	}

	return ids
}

// ShopIDs returns the distinct shops referenced by the cart.
func (c *Cart) ShopIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(c.Items))
	for _, item := range c.Items {
		if !slices.Contains(ids, item.ShopID) {
			ids = append(ids, item.ShopID)
		}
	}

	return ids
}

func (c *Cart) indexOf(itemID uuid.UUID) int {
	return slices.IndexFunc(c.Items, func(item *CartItem) bool {
		return item.ID == itemID
	})
}

// LineTotal is the snapshot price times quantity.
func (i *CartItem) LineTotal() decimal.Decimal {
	return i.Snapshot.ProductPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
