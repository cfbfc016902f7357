//go:build unit
// +build unit

package cryptography

import (
	"testing"

	"github.com/MGTheTrain/cryptovault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/cryptovault/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	TestAESKey128 = 16
	TestAESKey256 = 32
)

func setupAESProcessor(t *testing.T) cryptoalg.AESProcessor {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	processor, err := NewAESProcessor(logger)
	require.NoError(t, err)
	return processor
}

func TestAESProcessor(t *testing.T) {
	processor := setupAESProcessor(t)

	modes := []struct {
		name    string
		encrypt func(data, key []byte) ([]byte, error)
		decrypt func(payload, key []byte) ([]byte, error)
		ivSize  int
	}{
		{"GCM", processor.EncryptGCM, processor.DecryptGCM, 12},
		{"CBC", processor.EncryptCBC, processor.DecryptCBC, 16},
	}

	for _, mode := range modes {
		t.Run(mode.name+"/EncryptDecrypt", func(t *testing.T) {
			for _, size := range []int{16, 24, 32} {
				key, err := processor.GenerateKey(size)
				require.NoError(t, err)

				plainText := []byte("This is a test message.")

				ciphertext, err := mode.encrypt(plainText, key)
				require.NoError(t, err)
				assert.Greater(t, len(ciphertext), mode.ivSize)

				decryptedText, err := mode.decrypt(ciphertext, key)
				require.NoError(t, err)
				assert.Equal(t, plainText, decryptedText)
			}
		})

		t.Run(mode.name+"/FreshIVPerCall", func(t *testing.T) {
			key, err := processor.GenerateKey(TestAESKey256)
			require.NoError(t, err)

			first, err := mode.encrypt([]byte("same"), key)
			require.NoError(t, err)
			second, err := mode.encrypt([]byte("same"), key)
			require.NoError(t, err)

			assert.NotEqual(t, first[:mode.ivSize], second[:mode.ivSize])
			assert.NotEqual(t, first, second)
		})

		t.Run(mode.name+"/EncryptionWithInvalidKey", func(t *testing.T) {
			_, err := mode.encrypt([]byte("This is a test."), []byte("shortkey"))
			assert.ErrorIs(t, err, cryptoalg.ErrCryptoFailure)
		})

		t.Run(mode.name+"/DecryptShortCiphertext", func(t *testing.T) {
			key, err := processor.GenerateKey(TestAESKey128)
			require.NoError(t, err)

			_, err = mode.decrypt([]byte("short"), key)
			assert.ErrorIs(t, err, cryptoalg.ErrCryptoFailure)
		})
	}

	t.Run("GCM/DecryptWithWrongKey", func(t *testing.T) {
		key, err := processor.GenerateKey(TestAESKey256)
		require.NoError(t, err)

		ciphertext, err := processor.EncryptGCM([]byte("Test decryption with wrong key."), key)
		require.NoError(t, err)

		wrongKey, err := processor.GenerateKey(TestAESKey256)
		require.NoError(t, err)

		_, err = processor.DecryptGCM(ciphertext, wrongKey)
		assert.ErrorIs(t, err, cryptoalg.ErrCryptoFailure)
	})

	t.Run("GCM/TamperedCiphertext", func(t *testing.T) {
		key, err := processor.GenerateKey(TestAESKey256)
		require.NoError(t, err)

		ciphertext, err := processor.EncryptGCM([]byte("authenticated"), key)
		require.NoError(t, err)
		ciphertext[len(ciphertext)-1] ^= 0x01

		_, err = processor.DecryptGCM(ciphertext, key)
		assert.ErrorIs(t, err, cryptoalg.ErrCryptoFailure)
	})

	t.Run("CBC/BlockAlignedPlaintextGetsFullPaddingBlock", func(t *testing.T) {
		key, err := processor.GenerateKey(TestAESKey128)
		require.NoError(t, err)

		plainText := []byte("0123456789abcdef")
		ciphertext, err := processor.EncryptCBC(plainText, key)
		require.NoError(t, err)
		assert.Len(t, ciphertext, 16+32)

		decrypted, err := processor.DecryptCBC(ciphertext, key)
		require.NoError(t, err)
		assert.Equal(t, plainText, decrypted)
	})

	t.Run("GenerateKey", func(t *testing.T) {
		key, err := processor.GenerateKey(TestAESKey128)
		require.NoError(t, err)
		assert.Len(t, key, TestAESKey128)

		key256, err := processor.GenerateKey(TestAESKey256)
		require.NoError(t, err)
		assert.Len(t, key256, TestAESKey256)

		_, err = processor.GenerateKey(20)
		assert.ErrorIs(t, err, cryptoalg.ErrInvalidInput)
	})
}

func TestPKCS7Unpad(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"unaligned", []byte{1, 2, 3}},
		{"zero padding byte", append(make([]byte, 15), 0)},
		{"padding larger than block", append(make([]byte, 15), 17)},
		{"inconsistent padding", append(make([]byte, 14), 1, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pkcs7Unpad(tt.data, 16)
			assert.ErrorIs(t, err, cryptoalg.ErrCryptoFailure)
		})
	}

	unpadded, err := pkcs7Unpad(pkcs7Pad([]byte("abc"), 8), 8)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), unpadded)
}
