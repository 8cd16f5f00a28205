package auth

import (
	"testing"

	"kampuskart/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	hash, err := hasher.Hash("campus-secret")
	require.NoError(t, err)
	assert.NotEqual(t, "campus-secret", hash)

	assert.True(t, hasher.Check("campus-secret", hash))
	assert.False(t, hasher.Check("campus-secret!", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("campus-secret", "invalid_hash"))
}

func TestBcryptHasher_SaltsEveryHash(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewBcryptHasher_Cost(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want int
	}{
		{"nil config", nil, bcrypt.DefaultCost},
		{"no auth section", &config.Config{}, bcrypt.DefaultCost},
		{"configured", &config.Config{Auth: &config.AuthConfig{BcryptCost: 12}}, 12},
		{"below minimum", &config.Config{Auth: &config.AuthConfig{BcryptCost: 1}}, bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher, ok := NewBcryptHasher(tt.cfg).(*bcryptHasher)
			require.True(t, ok)
			assert.Equal(t, tt.want, hasher.cost)
		})
	}
}

func TestBcryptHasher_RejectsOverlongPassword(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	_, err := hasher.Hash(string(make([]byte, 100)))
	assert.Error(t, err)
}
