package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID       uuid.UUID `json:"-"`
	Role         string    `json:"role"`
	SellerStatus string    `json:"sellerStatus,omitempty"`
	Type         string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateTokens issues an access and a refresh token carrying the
	// identity's role and seller status at the time of issue.
	GenerateTokens(userID uuid.UUID, role, sellerStatus string) (accessToken string, refreshToken string, err error)

	// ValidateToken checks the signature, expiry and type of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// GetAccessTokenDuration returns the configured lifetime of access tokens.
	GetAccessTokenDuration() time.Duration
}
