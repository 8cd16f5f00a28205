package entity

import (
	"strings"
	"time"
	"unicode/utf8"

	domainerrors "kampuskart/internal/domain/errors"

	"github.com/google/uuid"
)

const (
	MaxShopNameLength        = 50
	MaxShopDescriptionLength = 500
)

// Shop is a seller's storefront. Each seller owns at most one.
type Shop struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	LogoRef     string // Blob reference, empty when no logo was uploaded.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks name and description limits.
func (s *Shop) Validate() error {
	s.Name = strings.TrimSpace(s.Name)
	s.Description = strings.TrimSpace(s.Description)

	switch {
	case s.Name == "":
		return domainerrors.NewValidationError("Shop name is required")
	case utf8.RuneCountInString(s.Name) > MaxShopNameLength:
		return domainerrors.NewValidationError("Shop name cannot exceed 50 characters")
	case s.Description == "":
		return domainerrors.NewValidationError("Shop description is required")
	case utf8.RuneCountInString(s.Description) > MaxShopDescriptionLength:
		return domainerrors.NewValidationError("Shop description cannot exceed 500 characters")
	}

	return nil
}

// IsOwnedBy reports whether userID owns the shop.
func (s *Shop) IsOwnedBy(userID uuid.UUID) bool {
	return s.OwnerID == userID
}
