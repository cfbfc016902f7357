package cryptography

import (
	"fmt"

	"github.com/MGTheTrain/cryptovault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/cryptovault/internal/pkg/logger"

	"golang.org/x/crypto/chacha20poly1305"
)

// chaCha20Poly1305Processor struct that implements the ChaCha20Poly1305Processor interface
type chaCha20Poly1305Processor struct {
	logger logger.Logger
}

// NewChaCha20Poly1305Processor creates and returns a new instance of chaCha20Poly1305Processor
func NewChaCha20Poly1305Processor(logger logger.Logger) (cryptoalg.ChaCha20Poly1305Processor, error) {
	return &chaCha20Poly1305Processor{
		logger: logger,
	}, nil
}

// GenerateKey generates a random 32 byte key
func (c *chaCha20Poly1305Processor) GenerateKey() ([]byte, error) {
	key, err := randomBytes(chacha20poly1305.KeySize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate ChaCha20-Poly1305 key: %w", err)
	}
	c.logger.Info("Generated ChaCha20-Poly1305 key")
	return key, nil
}

// Encrypt seals data and returns nonce || ciphertext || tag
func (c *chaCha20Poly1305Processor) Encrypt(data, key []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create ChaCha20-Poly1305 cipher: %w", cryptoalg.ErrCryptoFailure, err)
	}

	nonce, err := randomBytes(aead.NonceSize())
	if err != nil {
		return nil, err
	}

	sealed := aead.Seal(nonce, nonce, data, nil)
	c.logger.Info("ChaCha20-Poly1305 encryption succeeded")
	return sealed, nil
}

// Decrypt opens a payload produced by Encrypt
func (c *chaCha20Poly1305Processor) Decrypt(payload, key []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create ChaCha20-Poly1305 cipher: %w", cryptoalg.ErrCryptoFailure, err)
	}

	if len(payload) < aead.NonceSize()+aead.Overhead() {
		return nil, fmt.Errorf("%w: ciphertext too short", cryptoalg.ErrCryptoFailure)
	}

	nonce, ciphertext := payload[:aead.NonceSize()], payload[aead.NonceSize():]
	plainText, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decrypt data: %w", cryptoalg.ErrCryptoFailure, err)
	}

	c.logger.Info("ChaCha20-Poly1305 decryption succeeded")
	return plainText, nil
}
