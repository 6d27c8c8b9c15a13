package crypto

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCipher_RoundTrip(t *testing.T) {
	c, err := NewCipher("unit-test-encryption-secret")
	require.NoError(t, err)

	for _, plaintext := range []string{"sk-abc123", "", "многобайтовый секрет", "x"} {
		token, err := c.Encrypt(plaintext)
		require.NoError(t, err)

		decrypted, err := c.Decrypt(token)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	}
}

func TestCipher_TokensAreIndependent(t *testing.T) {
	c, err := NewCipher("unit-test-encryption-secret")
	require.NoError(t, err)

	first, err := c.Encrypt("sk-abc123")
	require.NoError(t, err)
	second, err := c.Encrypt("sk-abc123")
	require.NoError(t, err)

	// fresh nonce per call: identical plaintexts yield distinct tokens
	assert.NotEqual(t, first, second)
}

func TestCipher_ForeignKeyFails(t *testing.T) {
	c1, err := NewCipher("key-one")
	require.NoError(t, err)
	c2, err := NewCipher("key-two")
	require.NoError(t, err)

	token, err := c1.Encrypt("sk-abc123")
	require.NoError(t, err)

	_, err = c2.Decrypt(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDecryptionFailed))
}

func TestCipher_TamperedTokenFails(t *testing.T) {
	c, err := NewCipher("unit-test-encryption-secret")
	require.NoError(t, err)

	token, err := c.Encrypt("sk-abc123")
	require.NoError(t, err)

	blob, err := base64.StdEncoding.DecodeString(token)
	require.NoError(t, err)
	blob[len(blob)-1] ^= 0xFF
	tampered := base64.StdEncoding.EncodeToString(blob)

	_, err = c.Decrypt(tampered)
	assert.True(t, errors.Is(err, ErrDecryptionFailed))
}

func TestCipher_MalformedTokenFails(t *testing.T) {
	c, err := NewCipher("unit-test-encryption-secret")
	require.NoError(t, err)

	for _, token := range []string{"", "not base64 at all!!!", base64.StdEncoding.EncodeToString([]byte("short"))} {
		_, err := c.Decrypt(token)
		assert.True(t, errors.Is(err, ErrDecryptionFailed), "token %q", token)
	}
}
