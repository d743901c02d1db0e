package credentials

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey() []byte {
	return bytes.Repeat([]byte{0x42}, 32)
}

func TestNewStore(t *testing.T) {
	t.Run("accepts a 32-byte key", func(t *testing.T) {
		store, err := NewStore(nil, testKey())
		require.NoError(t, err)
		assert.NotNil(t, store)
	})

	t.Run("rejects short keys", func(t *testing.T) {
		_, err := NewStore(nil, []byte("too-short"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be 32 bytes")
	})

	t.Run("rejects long keys", func(t *testing.T) {
		_, err := NewStore(nil, bytes.Repeat([]byte{0x42}, 33))
		require.Error(t, err)
	})
}

func TestSealOpen(t *testing.T) {
	store, err := NewStore(nil, testKey())
	require.NoError(t, err)

	t.Run("round trips plaintext", func(t *testing.T) {
		sealed, err := store.seal([]byte("sk-test-key"))
		require.NoError(t, err)
		assert.NotContains(t, string(sealed), "sk-test-key")

		plain, err := store.open(sealed)
		require.NoError(t, err)
		assert.Equal(t, "sk-test-key", string(plain))
	})

	t.Run("unique nonce per seal", func(t *testing.T) {
		a, err := store.seal([]byte("same"))
		require.NoError(t, err)
		b, err := store.seal([]byte("same"))
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
	})

	t.Run("rejects tampered ciphertext", func(t *testing.T) {
		sealed, err := store.seal([]byte("secret"))
		require.NoError(t, err)
		sealed[len(sealed)-1] ^= 0xff

		_, err = store.open(sealed)
		assert.Error(t, err)
	})

	t.Run("rejects ciphertext shorter than the nonce", func(t *testing.T) {
		_, err := store.open([]byte{0x01, 0x02})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "shorter than nonce")
	})

	t.Run("rejects ciphertext sealed under a different key", func(t *testing.T) {
		other, err := NewStore(nil, bytes.Repeat([]byte{0x7f}, 32))
		require.NoError(t, err)
		sealed, err := other.seal([]byte("secret"))
		require.NoError(t, err)

		_, err = store.open(sealed)
		assert.Error(t, err)
	})
}
