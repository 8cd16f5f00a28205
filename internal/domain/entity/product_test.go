package entity

import (
	"math"
	"strings"
	"testing"

	domainerrors "kampuskart/internal/domain/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProduct_Validate(t *testing.T) {
	valid := func() *Product {
		return &Product{
			Name:      "Calculator",
			Price:     decimal.NewFromInt(450),
			Stock:     3,
			ImageRefs: []string{"1.png", "2.png"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(p *Product)
		wantErr error
	}{
		{"valid", func(*Product) {}, nil},
		{"blank name", func(p *Product) { p.Name = "  " }, domainerrors.ErrValidationFailed},
		{"name too long", func(p *Product) { p.Name = strings.Repeat("x", 51) }, domainerrors.ErrValidationFailed},
		{"description too long", func(p *Product) { p.Description = strings.Repeat("x", 501) }, domainerrors.ErrValidationFailed},
		{"negative price", func(p *Product) { p.Price = decimal.NewFromInt(-1) }, domainerrors.ErrValidationFailed},
		{"zero price", func(p *Product) { p.Price = decimal.Zero }, nil},
		{"negative stock", func(p *Product) { p.Stock = -1 }, domainerrors.ErrValidationFailed},
		{"four images", func(p *Product) { p.ImageRefs = []string{"1", "2", "3", "4"} }, domainerrors.ErrTooManyImages},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.mutate(p)

			err := p.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProduct_FeaturedImage(t *testing.T) {
	p := &Product{ImageRefs: []string{"1.png", "2.png", "3.png"}}

	p.SetFeaturedImage(2)
	assert.Equal(t, 2, p.FeaturedImageIndex)
	assert.Equal(t, "3.png", p.FeaturedImage())

	p.SetFeaturedImage(3)
	assert.Equal(t, 0, p.FeaturedImageIndex)

	p.SetFeaturedImage(2)
	p.ImageRefs = []string{"only.png"}
	p.NormalizeFeaturedImage()
	assert.Equal(t, 0, p.FeaturedImageIndex)

	p.ImageRefs = nil
	assert.Equal(t, "", p.FeaturedImage())
}

func TestShop_Validate(t *testing.T) {
	s := &Shop{Name: " Kape ", Description: "Coffee"}
	assert.NoError(t, s.Validate())
	assert.Equal(t, "Kape", s.Name)

	s.Name = strings.Repeat("ñ", 50)
	assert.NoError(t, s.Validate())

	s.Name = strings.Repeat("ñ", 51)
	assert.ErrorIs(t, s.Validate(), domainerrors.ErrValidationFailed)

	s.Name = "Kape"
	s.Description = ""
	assert.ErrorIs(t, s.Validate(), domainerrors.ErrValidationFailed)
}

func TestPage(t *testing.T) {
	p := Page{}.Clamp(12, 50)
	assert.Equal(t, Page{Number: 1, Size: 12}, p)
	assert.Equal(t, 0, p.Offset())

	p = Page{Number: 3, Size: 100}.Clamp(12, 50)
	assert.Equal(t, 50, p.Size)
	assert.Equal(t, 100, p.Offset())

	assert.Equal(t, 3, Page{Number: 1, Size: 10}.TotalPages(21))
	assert.Equal(t, 0, Page{Number: 1, Size: 10}.TotalPages(0))

	p = Page{Number: 1_000_000_000_000_000_000, Size: 12}.Clamp(12, 50)
	assert.Positive(t, p.Number)
	assert.GreaterOrEqual(t, p.Offset(), 0)
	assert.Equal(t, (p.Number-1)*12, p.Offset())

	assert.Equal(t, math.MaxInt, Page{Number: math.MaxInt, Size: 50}.Offset())
}
