package cryptography

import (
	"crypto/cipher"
	"fmt"

	"github.com/MGTheTrain/cryptovault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/cryptovault/internal/pkg/logger"

	"golang.org/x/crypto/blowfish"
)

// blowfishProcessor struct that implements the BlowfishProcessor interface
type blowfishProcessor struct {
	logger logger.Logger
}

// NewBlowfishProcessor creates and returns a new instance of blowfishProcessor
func NewBlowfishProcessor(logger logger.Logger) (cryptoalg.BlowfishProcessor, error) {
	return &blowfishProcessor{
		logger: logger,
	}, nil
}

// GenerateKey generates a random Blowfish key of keySize bytes
func (b *blowfishProcessor) GenerateKey(keySize int) ([]byte, error) {
	if keySize < 4 || keySize > 56 {
		return nil, fmt.Errorf("%w: invalid Blowfish key size %d bytes, must be between 4 and 56", cryptoalg.ErrInvalidInput, keySize)
	}
	key, err := randomBytes(keySize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate Blowfish key: %w", err)
	}
	b.logger.Info("Generated Blowfish key")
	return key, nil
}

// Encrypt encrypts data in CBC mode with PKCS#7 padding and returns iv || ciphertext
func (b *blowfishProcessor) Encrypt(data, key []byte) ([]byte, error) {
	block, err := newBlowfishBlock(key)
	if err != nil {
		return nil, err
	}

	iv, err := randomBytes(blowfish.BlockSize)
	if err != nil {
		return nil, err
	}

	padded := pkcs7Pad(data, blowfish.BlockSize)
	out := make([]byte, blowfish.BlockSize+len(padded))
	copy(out, iv)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out[blowfish.BlockSize:], padded)

	b.logger.Info("Blowfish encryption succeeded")
	return out, nil
}

// Decrypt decrypts a payload produced by Encrypt
func (b *blowfishProcessor) Decrypt(payload, key []byte) ([]byte, error) {
	block, err := newBlowfishBlock(key)
	if err != nil {
		return nil, err
	}

	if len(payload) < 2*blowfish.BlockSize || len(payload)%blowfish.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d is invalid for Blowfish-CBC", cryptoalg.ErrCryptoFailure, len(payload))
	}

	iv, ciphertext := payload[:blowfish.BlockSize], payload[blowfish.BlockSize:]
	plainText := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plainText, ciphertext)

	unpadded, err := pkcs7Unpad(plainText, blowfish.BlockSize)
	if err != nil {
		return nil, err
	}

	b.logger.Info("Blowfish decryption succeeded")
	return unpadded, nil
}

func newBlowfishBlock(key []byte) (cipher.Block, error) {
	block, err := blowfish.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Blowfish cipher: %w", cryptoalg.ErrCryptoFailure, err)
	}
	return block, nil
}
