package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pw123")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "pw123", hash)
}

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	first, err := HashPassword("pw123")
	assert.NoError(t, err)
	second, err := HashPassword("pw123")
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)

	assert.True(t, CheckPassword("pw123", first))
	assert.True(t, CheckPassword("pw123", second))
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("pw123")
	assert.NoError(t, err)

	assert.True(t, CheckPassword("pw123", hash))
	assert.False(t, CheckPassword("pw123x", hash))
	assert.False(t, CheckPassword("", hash))
}

func TestCheckPassword_MalformedHashFailsClosed(t *testing.T) {
	for _, stored := range []string{
		"",
		"plaintext",
		"$1$legacy$abcdef",
		"md5:5f4dcc3b5aa765d61d8327deb882cf99",
	} {
		assert.False(t, CheckPassword("pw123", stored), "stored=%q", stored)
	}
}
