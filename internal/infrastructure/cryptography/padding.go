package cryptography

import (
	"bytes"
	"crypto/rand"
	"fmt"

	"github.com/MGTheTrain/cryptovault/internal/domain/cryptoalg"
)

// randomBytes returns n bytes from crypto/rand
func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return b, nil
}

// pkcs7Pad appends PKCS#7 padding up to a multiple of blockSize. A full block is added to aligned input.
func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	return append(append(make([]byte, 0, len(data)+padding), data...), bytes.Repeat([]byte{byte(padding)}, padding)...)
}

// pkcs7Unpad strips and checks PKCS#7 padding
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext is not a multiple of the block size", cryptoalg.ErrCryptoFailure)
	}
	padding := int(data[len(data)-1])
	if padding == 0 || padding > blockSize {
		return nil, fmt.Errorf("%w: invalid padding", cryptoalg.ErrCryptoFailure)
	}
	for _, b := range data[len(data)-padding:] {
		if int(b) != padding {
			return nil, fmt.Errorf("%w: invalid padding", cryptoalg.ErrCryptoFailure)
		}
	}
	return data[:len(data)-padding], nil
}
