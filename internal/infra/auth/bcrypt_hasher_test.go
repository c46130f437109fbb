package auth

import (
	"testing"

	"grocer/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHasherConfig(cost int) *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BcryptCost: cost}

	return cfg
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(newHasherConfig(4))

	password := "pw123456"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := NewBcryptHasher(newHasherConfig(4))

	// Same input must produce a different stored value on every call.
	first, err := hasher.Hash("pw123456")
	require.NoError(t, err)
	second, err := hasher.Hash("pw123456")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("pw123456", first))
	assert.True(t, hasher.Check("pw123456", second))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher(newHasherConfig(4))

	hash, err := hasher.Hash("pw123456")
	require.NoError(t, err)

	assert.True(t, hasher.Check("pw123456", hash))
	assert.False(t, hasher.Check("pw1234567", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("pw123456", "not-a-bcrypt-hash"))
}
