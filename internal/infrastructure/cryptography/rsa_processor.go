package cryptography

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"errors"
	"fmt"

	"github.com/MGTheTrain/cryptovault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/cryptovault/internal/pkg/logger"
)

// rsaProcessor struct that implements the RSAProcessor interface
type rsaProcessor struct {
	logger logger.Logger
}

// NewRSAProcessor creates and returns a new instance of rsaProcessor
func NewRSAProcessor(logger logger.Logger) (cryptoalg.RSAProcessor, error) {
	return &rsaProcessor{
		logger: logger,
	}, nil
}

// GenerateKeys generates an RSA key pair with the specified bit size.
// Supported sizes: 1024, 2048, 3072, 4096 bits.
func (r *rsaProcessor) GenerateKeys(keySize int) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	switch keySize {
	case 1024, 2048, 3072, 4096:
	default:
		return nil, nil, fmt.Errorf("%w: invalid RSA key size %d, must be 1024, 2048, 3072 or 4096", cryptoalg.ErrInvalidInput, keySize)
	}

	privateKey, err := rsa.GenerateKey(rand.Reader, keySize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA keys: %w", err)
	}
	publicKey := &privateKey.PublicKey
	r.logger.Info("Generated RSA-", keySize, " key pairs")
	return privateKey, publicKey, nil
}

// Encrypt encrypts plaintext using RSA-OAEP with SHA-256.
// NOTE: RSA can only encrypt small amounts of data (< key size - 66 bytes). Longer input is rejected.
func (r *rsaProcessor) Encrypt(plainText []byte, publicKey *rsa.PublicKey) ([]byte, error) {
	if publicKey == nil {
		return nil, errors.New("public key cannot be nil")
	}

	encrypted, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, publicKey, plainText, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encrypt data: %w", cryptoalg.ErrCryptoFailure, err)
	}

	r.logger.Info("RSA encryption succeeded")
	return encrypted, nil
}

// Decrypt decrypts RSA-OAEP ciphertext using the private key.
func (r *rsaProcessor) Decrypt(ciphertext []byte, privateKey *rsa.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, fmt.Errorf("private key cannot be nil")
	}

	decrypted, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, privateKey, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decrypt data: %w", cryptoalg.ErrCryptoFailure, err)
	}

	r.logger.Info("RSA decryption succeeded")
	return decrypted, nil
}

// Sign creates an RSASSA-PKCS1-v1_5 signature over the SHA-256 digest of data.
func (r *rsaProcessor) Sign(data []byte, privateKey *rsa.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, fmt.Errorf("private key cannot be nil")
	}

	hashed := sha256.Sum256(data)

	signature, err := rsa.SignPKCS1v15(rand.Reader, privateKey, crypto.SHA256, hashed[:])
	if err != nil {
		return nil, fmt.Errorf("%w: failed to sign data: %w", cryptoalg.ErrCryptoFailure, err)
	}

	r.logger.Info("RSA signing succeeded")
	return signature, nil
}

// Verify verifies an RSASSA-PKCS1-v1_5 signature using the public key.
// A signature that does not match is reported as false without an error.
func (r *rsaProcessor) Verify(data []byte, signature []byte, publicKey *rsa.PublicKey) (bool, error) {
	if publicKey == nil {
		return false, fmt.Errorf("public key cannot be nil")
	}

	hashed := sha256.Sum256(data)

	if err := rsa.VerifyPKCS1v15(publicKey, crypto.SHA256, hashed[:], signature); err != nil {
		r.logger.Info("RSA signature rejected")
		return false, nil
	}

	r.logger.Info("RSA signature verified successfully")
	return true, nil
}

// MarshalPublicKey encodes the public key as SPKI DER
func (r *rsaProcessor) MarshalPublicKey(publicKey *rsa.PublicKey) ([]byte, error) {
	der, err := x509.MarshalPKIXPublicKey(publicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal public key: %w", err)
	}
	return der, nil
}

// MarshalPrivateKey encodes the private key as PKCS#8 DER
func (r *rsaProcessor) MarshalPrivateKey(privateKey *rsa.PrivateKey) ([]byte, error) {
	der, err := x509.MarshalPKCS8PrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal private key: %w", err)
	}
	return der, nil
}

// ParsePublicKey decodes an SPKI DER public key, falling back to PKCS#1
func (r *rsaProcessor) ParsePublicKey(der []byte) (*rsa.PublicKey, error) {
	pubKeyInterface, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		publicKey, pkcs1Err := x509.ParsePKCS1PublicKey(der)
		if pkcs1Err != nil {
			return nil, fmt.Errorf("%w: unable to parse public key in either SPKI or PKCS#1 format: %w", cryptoalg.ErrCryptoFailure, err)
		}
		return publicKey, nil
	}

	publicKey, ok := pubKeyInterface.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: public key is not of type RSA", cryptoalg.ErrCryptoFailure)
	}

	return publicKey, nil
}

// ParsePrivateKey decodes a PKCS#8 DER private key, falling back to PKCS#1
func (r *rsaProcessor) ParsePrivateKey(der []byte) (*rsa.PrivateKey, error) {
	privateKeyInterface, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		privateKey, pkcs1Err := x509.ParsePKCS1PrivateKey(der)
		if pkcs1Err != nil {
			return nil, fmt.Errorf("%w: unable to parse private key in either PKCS#8 or PKCS#1 format: %w", cryptoalg.ErrCryptoFailure, err)
		}
		return privateKey, nil
	}

	privateKey, ok := privateKeyInterface.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: private key is not of type RSA", cryptoalg.ErrCryptoFailure)
	}

	return privateKey, nil
}
