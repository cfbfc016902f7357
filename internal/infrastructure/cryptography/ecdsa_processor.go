package cryptography

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"fmt"
	"math/big"

	"github.com/MGTheTrain/cryptovault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/cryptovault/internal/pkg/logger"
)

// ecdsaProcessor struct that implements the ECDSAProcessor interface
type ecdsaProcessor struct {
	logger logger.Logger
}

// NewECDSAProcessor creates and returns a new instance of ecdsaProcessor
func NewECDSAProcessor(logger logger.Logger) (cryptoalg.ECDSAProcessor, error) {
	return &ecdsaProcessor{
		logger: logger,
	}, nil
}

// GenerateKeys generates an ECDSA key pair on the specified elliptic curve.
// Supported curves: P-256, P-384, P-521.
func (e *ecdsaProcessor) GenerateKeys(curve elliptic.Curve) (*ecdsa.PrivateKey, *ecdsa.PublicKey, error) {
	if curve == nil {
		return nil, nil, fmt.Errorf("%w: curve cannot be nil", cryptoalg.ErrInvalidInput)
	}

	privateKey, err := ecdsa.GenerateKey(curve, rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate elliptic curve keys: %w", err)
	}

	publicKey := &privateKey.PublicKey
	e.logger.Info("Generated EC key pairs on ", curve.Params().Name)
	return privateKey, publicKey, nil
}

// Sign creates a digital signature of the SHA-256 digest of message.
// The signature is r || s, each left padded to the curve byte length.
func (e *ecdsaProcessor) Sign(message []byte, privateKey *ecdsa.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, fmt.Errorf("private key cannot be nil")
	}

	if privateKey.D == nil || privateKey.D.Sign() == 0 {
		return nil, fmt.Errorf("%w: invalid private key: D cannot be zero", cryptoalg.ErrCryptoFailure)
	}

	hash := sha256.Sum256(message)
	r, s, err := ecdsa.Sign(rand.Reader, privateKey, hash[:])
	if err != nil {
		return nil, fmt.Errorf("%w: failed to sign message: %w", cryptoalg.ErrCryptoFailure, err)
	}

	size := curveByteSize(privateKey.Curve)
	signature := make([]byte, 2*size)
	r.FillBytes(signature[:size])
	s.FillBytes(signature[size:])

	e.logger.Info("ECDSA signing succeeded")
	return signature, nil
}

// Verify verifies an r || s signature using the public key.
// A signature that does not match, including one of the wrong length, is reported as false without an error.
func (e *ecdsaProcessor) Verify(message, signature []byte, publicKey *ecdsa.PublicKey) (bool, error) {
	if publicKey == nil {
		return false, fmt.Errorf("public key cannot be nil")
	}

	size := curveByteSize(publicKey.Curve)
	if len(signature) != 2*size {
		e.logger.Info("ECDSA signature rejected")
		return false, nil
	}

	hash := sha256.Sum256(message)
	rInt := new(big.Int).SetBytes(signature[:size])
	sInt := new(big.Int).SetBytes(signature[size:])

	valid := ecdsa.Verify(publicKey, hash[:], rInt, sInt)

	if valid {
		e.logger.Info("ECDSA verification succeeded")
	} else {
		e.logger.Info("ECDSA signature rejected")
	}
	return valid, nil
}

// MarshalPublicKey encodes the public key as SPKI DER
func (e *ecdsaProcessor) MarshalPublicKey(publicKey *ecdsa.PublicKey) ([]byte, error) {
	der, err := x509.MarshalPKIXPublicKey(publicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal public key: %w", err)
	}
	return der, nil
}

// MarshalPrivateKey encodes the private key as PKCS#8 DER
func (e *ecdsaProcessor) MarshalPrivateKey(privateKey *ecdsa.PrivateKey) ([]byte, error) {
	der, err := x509.MarshalPKCS8PrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal private key: %w", err)
	}
	return der, nil
}

// ParsePublicKey decodes an SPKI DER public key
func (e *ecdsaProcessor) ParsePublicKey(der []byte) (*ecdsa.PublicKey, error) {
	pubKeyInterface, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to parse public key: %w", cryptoalg.ErrCryptoFailure, err)
	}

	publicKey, ok := pubKeyInterface.(*ecdsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: public key is not of type ECDSA", cryptoalg.ErrCryptoFailure)
	}

	return publicKey, nil
}

// ParsePrivateKey decodes a PKCS#8 DER private key, falling back to SEC 1
func (e *ecdsaProcessor) ParsePrivateKey(der []byte) (*ecdsa.PrivateKey, error) {
	privateKeyInterface, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		privateKey, sec1Err := x509.ParseECPrivateKey(der)
		if sec1Err != nil {
			return nil, fmt.Errorf("%w: unable to parse private key in either PKCS#8 or SEC 1 format: %w", cryptoalg.ErrCryptoFailure, err)
		}
		return privateKey, nil
	}

	privateKey, ok := privateKeyInterface.(*ecdsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: private key is not of type ECDSA", cryptoalg.ErrCryptoFailure)
	}

	return privateKey, nil
}

func curveByteSize(curve elliptic.Curve) int {
	return (curve.Params().BitSize + 7) / 8
}
