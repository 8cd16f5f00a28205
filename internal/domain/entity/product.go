package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	domainerrors "kampuskart/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	MaxProductNameLength        = 50
	MaxProductDescriptionLength = 500
	MaxProductImages            = 3
)

// Product is an item listed by a shop.
type Product struct {
	ID                 uuid.UUID
	ShopID             uuid.UUID
	Name               string
	Description        string
	Price              decimal.Decimal
	Stock              int
	ImageRefs          []string
	FeaturedImageIndex int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Validate checks field limits and normalizes the featured image index.
func (p *Product) Validate() error {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)

	switch {
	case p.Name == "":
		return domainerrors.NewValidationError("Product name is required")
	case utf8.RuneCountInString(p.Name) > MaxProductNameLength:
		return domainerrors.NewValidationError("Product name cannot exceed 50 characters")
	case utf8.RuneCountInString(p.Description) > MaxProductDescriptionLength:
		return domainerrors.NewValidationError("Product description cannot exceed 500 characters")
	case p.Price.IsNegative():
		return domainerrors.NewValidationError("Product price cannot be negative")
	case p.Stock < 0:
		return domainerrors.NewValidationError("Product stock cannot be negative")
	case len(p.ImageRefs) > MaxProductImages:
		return domainerrors.ErrTooManyImages
	}

	p.NormalizeFeaturedImage()

	return nil
}

// SetFeaturedImage points the featured index at idx, falling back to 0 when idx
// does not address an image.
func (p *Product) SetFeaturedImage(idx int) {
	p.FeaturedImageIndex = idx
	p.NormalizeFeaturedImage()
}

// NormalizeFeaturedImage resets the featured index to 0 when it is out of range.
func (p *Product) NormalizeFeaturedImage() {
	if p.FeaturedImageIndex < 0 || p.FeaturedImageIndex >= len(p.ImageRefs) {
		p.FeaturedImageIndex = 0
	}
}

// FeaturedImage returns the featured image reference, or "" when there are no images.
func (p *Product) FeaturedImage() string {
	if len(p.ImageRefs) == 0 {
		return ""
	}

	return p.ImageRefs[p.FeaturedImageIndex]
}

// InStock reports whether at least one unit is available.
func (p *Product) InStock() bool {
	return p.Stock > 0
}
