package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShopModel mirrors the 'shops' table. The unique owner index enforces one shop per seller.
type ShopModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	Name        string    `gorm:"type:varchar(50);not null"`
	Description string    `gorm:"type:varchar(500);not null"`
	LogoRef     string    `gorm:"type:varchar(255)"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ShopID             uuid.UUID       `gorm:"type:uuid;index;not null"`
	Name               string          `gorm:"type:varchar(50);not null"`
	Description        string          `gorm:"type:varchar(500)"`
	Price              decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Stock              int             `gorm:"not null;default:0"`
	ImageRefs          []string        `gorm:"type:text;serializer:json"`
	FeaturedImageIndex int             `gorm:"not null;default:0"`
	CreatedAt          time.Time       `gorm:"index"`
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
