package app

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/cryptovault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/cryptovault/internal/pkg/codec"
)

// Sign signs the UTF-8 bytes of input with the base64 private key and renders the signature in format
func (s *cryptoService) Sign(ctx context.Context, algorithm cryptoalg.SignatureAlgorithm, input, privateKey string, format cryptoalg.OutputFormat) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := cryptoalg.ParseSignatureAlgorithm(string(algorithm)); err != nil {
		return "", err
	}

	keyBytes, err := decodeKey(privateKey, "private key")
	if err != nil {
		return "", err
	}

	signature, err := s.sign(algorithm, codec.TextToBytes(input), keyBytes)
	if err != nil {
		return "", err
	}
	return codec.FormatOutput(signature, format), nil
}

// Verify checks signature over the UTF-8 bytes of input. A signature that does not match yields false
// without an error; an unusable public key is a cryptographic failure.
func (s *cryptoService) Verify(ctx context.Context, algorithm cryptoalg.SignatureAlgorithm, input, signature, publicKey string, inputFormat cryptoalg.OutputFormat) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if _, err := cryptoalg.ParseSignatureAlgorithm(string(algorithm)); err != nil {
		return false, err
	}
	if signature == "" {
		return false, fmt.Errorf("%w: signature is required", cryptoalg.ErrInvalidInput)
	}

	sigBytes, err := codec.DecodePayload(signature, inputFormat)
	if err != nil {
		return false, fmt.Errorf("invalid signature format: %w", err)
	}

	keyBytes, err := decodeKey(publicKey, "public key")
	if err != nil {
		return false, err
	}

	return s.verify(algorithm, codec.TextToBytes(input), sigBytes, keyBytes)
}

func (s *cryptoService) sign(algorithm cryptoalg.SignatureAlgorithm, message, privateKey []byte) ([]byte, error) {
	switch algorithm {
	case cryptoalg.SignatureRSASHA256:
		priv, err := s.processors.RSA.ParsePrivateKey(privateKey)
		if err != nil {
			return nil, err
		}
		return s.processors.RSA.Sign(message, priv)
	case cryptoalg.SignatureECDSA:
		priv, err := s.processors.ECDSA.ParsePrivateKey(privateKey)
		if err != nil {
			return nil, err
		}
		return s.processors.ECDSA.Sign(message, priv)
	case cryptoalg.SignatureEd25519:
		priv, err := s.processors.Ed25519.ParsePrivateKey(privateKey)
		if err != nil {
			return nil, err
		}
		return s.processors.Ed25519.Sign(message, priv)
	case cryptoalg.SignatureEd448:
		return s.processors.Ed448.Sign(message, privateKey)
	case cryptoalg.SignatureMLDSA65:
		return s.processors.MLDSA65.Sign(message, privateKey)
	default:
		return nil, fmt.Errorf("%w: signature algorithm %q", cryptoalg.ErrUnsupportedAlgorithm, algorithm)
	}
}

func (s *cryptoService) verify(algorithm cryptoalg.SignatureAlgorithm, message, signature, publicKey []byte) (bool, error) {
	switch algorithm {
	case cryptoalg.SignatureRSASHA256:
		pub, err := s.processors.RSA.ParsePublicKey(publicKey)
		if err != nil {
			return false, err
		}
		return s.processors.RSA.Verify(message, signature, pub)
	case cryptoalg.SignatureECDSA:
		pub, err := s.processors.ECDSA.ParsePublicKey(publicKey)
		if err != nil {
			return false, err
		}
		return s.processors.ECDSA.Verify(message, signature, pub)
	case cryptoalg.SignatureEd25519:
		pub, err := s.processors.Ed25519.ParsePublicKey(publicKey)
		if err != nil {
			return false, err
		}
		return s.processors.Ed25519.Verify(message, signature, pub)
	case cryptoalg.SignatureEd448:
		return s.processors.Ed448.Verify(message, signature, publicKey)
	case cryptoalg.SignatureMLDSA65:
		return s.processors.MLDSA65.Verify(message, signature, publicKey)
	default:
		return false, fmt.Errorf("%w: signature algorithm %q", cryptoalg.ErrUnsupportedAlgorithm, algorithm)
	}
}
