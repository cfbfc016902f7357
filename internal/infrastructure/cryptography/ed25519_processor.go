package cryptography

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"fmt"

	"github.com/MGTheTrain/cryptovault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/cryptovault/internal/pkg/logger"
)

// ed25519Processor struct that implements the Ed25519Processor interface
type ed25519Processor struct {
	logger logger.Logger
}

// NewEd25519Processor creates and returns a new instance of ed25519Processor
func NewEd25519Processor(logger logger.Logger) (cryptoalg.Ed25519Processor, error) {
	return &ed25519Processor{
		logger: logger,
	}, nil
}

// GenerateKeys generates an Ed25519 key pair
func (e *ed25519Processor) GenerateKeys() (ed25519.PrivateKey, ed25519.PublicKey, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate Ed25519 keys: %w", err)
	}
	e.logger.Info("Generated Ed25519 key pairs")
	return privateKey, publicKey, nil
}

// Sign signs message and returns the 64 byte signature
func (e *ed25519Processor) Sign(message []byte, privateKey ed25519.PrivateKey) ([]byte, error) {
	if len(privateKey) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("%w: invalid Ed25519 private key length %d", cryptoalg.ErrCryptoFailure, len(privateKey))
	}

	signature := ed25519.Sign(privateKey, message)
	e.logger.Info("Ed25519 signing succeeded")
	return signature, nil
}

// Verify reports whether signature is valid for message. A malformed signature is reported as false.
func (e *ed25519Processor) Verify(message, signature []byte, publicKey ed25519.PublicKey) (bool, error) {
	if len(publicKey) != ed25519.PublicKeySize {
		return false, fmt.Errorf("%w: invalid Ed25519 public key length %d", cryptoalg.ErrCryptoFailure, len(publicKey))
	}

	valid := len(signature) == ed25519.SignatureSize && ed25519.Verify(publicKey, message, signature)
	if valid {
		e.logger.Info("Ed25519 verification succeeded")
	} else {
		e.logger.Info("Ed25519 signature rejected")
	}
	return valid, nil
}

// MarshalPublicKey encodes the public key as SPKI DER
func (e *ed25519Processor) MarshalPublicKey(publicKey ed25519.PublicKey) ([]byte, error) {
	der, err := x509.MarshalPKIXPublicKey(publicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal public key: %w", err)
	}
	return der, nil
}

// MarshalPrivateKey encodes the private key as PKCS#8 DER
func (e *ed25519Processor) MarshalPrivateKey(privateKey ed25519.PrivateKey) ([]byte, error) {
	der, err := x509.MarshalPKCS8PrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal private key: %w", err)
	}
	return der, nil
}

// ParsePublicKey decodes an SPKI DER public key
func (e *ed25519Processor) ParsePublicKey(der []byte) (ed25519.PublicKey, error) {
	pubKeyInterface, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to parse public key: %w", cryptoalg.ErrCryptoFailure, err)
	}

	publicKey, ok := pubKeyInterface.(ed25519.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: public key is not of type Ed25519", cryptoalg.ErrCryptoFailure)
	}
	return publicKey, nil
}

// ParsePrivateKey decodes a PKCS#8 DER private key
func (e *ed25519Processor) ParsePrivateKey(der []byte) (ed25519.PrivateKey, error) {
	privateKeyInterface, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to parse private key: %w", cryptoalg.ErrCryptoFailure, err)
	}

	privateKey, ok := privateKeyInterface.(ed25519.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: private key is not of type Ed25519", cryptoalg.ErrCryptoFailure)
	}
	return privateKey, nil
}
