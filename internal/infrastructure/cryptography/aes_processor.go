package cryptography

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/MGTheTrain/cryptovault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/cryptovault/internal/pkg/logger"
)

const gcmNonceSize = 12

// aesProcessor struct that implements the AESProcessor interface
type aesProcessor struct {
	logger logger.Logger
}

// NewAESProcessor creates and returns a new instance of aesProcessor
func NewAESProcessor(logger logger.Logger) (cryptoalg.AESProcessor, error) {
	return &aesProcessor{
		logger: logger,
	}, nil
}

// GenerateKey generates a random AES key of keySize bytes (16, 24 or 32)
func (a *aesProcessor) GenerateKey(keySize int) ([]byte, error) {
	if err := checkAESKeySize(keySize); err != nil {
		return nil, fmt.Errorf("%w: %w", cryptoalg.ErrInvalidInput, err)
	}
	key, err := randomBytes(keySize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate AES key: %w", err)
	}
	a.logger.Info("Generated AES-", keySize*8, " key")
	return key, nil
}

// EncryptGCM seals data with AES-GCM and returns nonce || ciphertext || tag
func (a *aesProcessor) EncryptGCM(data, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce, err := randomBytes(gcmNonceSize)
	if err != nil {
		return nil, err
	}

	sealed := gcm.Seal(nonce, nonce, data, nil)
	a.logger.Info("AES-GCM encryption succeeded")
	return sealed, nil
}

// DecryptGCM opens a payload produced by EncryptGCM
func (a *aesProcessor) DecryptGCM(payload, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	if len(payload) < gcmNonceSize+gcm.Overhead() {
		return nil, fmt.Errorf("%w: ciphertext too short", cryptoalg.ErrCryptoFailure)
	}

	nonce, ciphertext := payload[:gcmNonceSize], payload[gcmNonceSize:]
	plainText, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decrypt data: %w", cryptoalg.ErrCryptoFailure, err)
	}

	a.logger.Info("AES-GCM decryption succeeded")
	return plainText, nil
}

// EncryptCBC encrypts data with AES-CBC and PKCS#7 padding and returns iv || ciphertext
func (a *aesProcessor) EncryptCBC(data, key []byte) ([]byte, error) {
	block, err := newAESBlock(key)
	if err != nil {
		return nil, err
	}

	iv, err := randomBytes(aes.BlockSize)
	if err != nil {
		return nil, err
	}

	padded := pkcs7Pad(data, aes.BlockSize)
	out := make([]byte, aes.BlockSize+len(padded))
	copy(out, iv)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out[aes.BlockSize:], padded)

	a.logger.Info("AES-CBC encryption succeeded")
	return out, nil
}

// DecryptCBC decrypts a payload produced by EncryptCBC
func (a *aesProcessor) DecryptCBC(payload, key []byte) ([]byte, error) {
	block, err := newAESBlock(key)
	if err != nil {
		return nil, err
	}

	if len(payload) < 2*aes.BlockSize || len(payload)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d is invalid for AES-CBC", cryptoalg.ErrCryptoFailure, len(payload))
	}

	iv, ciphertext := payload[:aes.BlockSize], payload[aes.BlockSize:]
	plainText := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plainText, ciphertext)

	unpadded, err := pkcs7Unpad(plainText, aes.BlockSize)
	if err != nil {
		return nil, err
	}

	a.logger.Info("AES-CBC decryption succeeded")
	return unpadded, nil
}

func checkAESKeySize(size int) error {
	switch size {
	case 16, 24, 32:
		return nil
	default:
		return fmt.Errorf("invalid AES key size %d bytes, must be 16, 24 or 32", size)
	}
}

func newAESBlock(key []byte) (cipher.Block, error) {
	if err := checkAESKeySize(len(key)); err != nil {
		return nil, fmt.Errorf("%w: %w", cryptoalg.ErrCryptoFailure, err)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create AES cipher: %w", cryptoalg.ErrCryptoFailure, err)
	}
	return block, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := newAESBlock(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create GCM: %w", cryptoalg.ErrCryptoFailure, err)
	}
	return gcm, nil
}
