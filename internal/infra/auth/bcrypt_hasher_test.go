package auth

import (
	"strings"
	"testing"

	"bookstore/config"
	domainerrors "bookstore/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("pw123")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "pw123", hash)

	assert.True(t, hasher.Check("pw123", hash))
	assert.False(t, hasher.Check("pw1234", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_FreshSaltPerHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same-password", first))
	assert.True(t, hasher.Check("same-password", second))
}

func TestBcryptHasher_DistinctPasswordsDoNotCrossVerify(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	passwords := []string{"alpha", "beta", "Pässwörd", "with space", "0"}

	hashes := make([]string, len(passwords))
	for i, p := range passwords {
		h, err := hasher.Hash(p)
		require.NoError(t, err)
		hashes[i] = h
	}

	for i, p := range passwords {
		for j, h := range hashes {
			assert.Equal(t, i == j, hasher.Check(p, h), "password %q against hash %d", p, j)
		}
	}
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	for _, stored := range []string{"", "invalid_hash", "$2a$10$", "$2a$99$abcdefghijklmnopqrstuv"} {
		assert.NotPanics(t, func() {
			assert.False(t, hasher.Check("pw123", stored))
		})
	}
}

func TestBcryptHasher_ConfiguredCost(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 6}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("pw123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestBcryptHasher_DefaultCost(t *testing.T) {
	hasher, ok := NewBcryptHasher(nil).(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, config.DefaultBcryptCost, hasher.cost)
}

func TestBcryptHasher_CostIsClamped(t *testing.T) {
	low, ok := NewBcryptHasherWithCost(1).(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, bcrypt.MinCost, low.cost)

	high, ok := NewBcryptHasherWithCost(99).(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, bcrypt.MaxCost, high.cost)
}

func TestBcryptHasher_TooLongPassword(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	_, err := hasher.Hash(strings.Repeat("x", 73))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}
