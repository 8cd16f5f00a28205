package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartModel mirrors the 'carts' table. Each buyer has at most one row.
type CartModel struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey"`
	BuyerID   uuid.UUID        `gorm:"type:uuid;uniqueIndex;not null"`
	Items     []*CartItemModel `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// CartItemModel mirrors the 'cart_items' table. Position keeps insertion order.
type CartItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CartID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Position  int       `gorm:"not null"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	ShopID    uuid.UUID `gorm:"type:uuid;not null"`
	Quantity  int       `gorm:"not null"`
	AddedAt   time.Time

	ProductName   string          `gorm:"type:varchar(50)"`
	ProductPrice  decimal.Decimal `gorm:"type:numeric(12,2)"`
	ProductImages []string        `gorm:"type:text;serializer:json"`
	ProductStock  int
	ShopName      string `gorm:"type:varchar(50)"`
	ShopLogo      string `gorm:"type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}

// All lists every model for schema migration.
func All() []any {
	return []any{
		&UserModel{},
		&ShopModel{},
		&ProductModel{},
		&CartModel{},
		&CartItemModel{},
	}
}
