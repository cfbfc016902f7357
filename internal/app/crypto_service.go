package app

import (
	"context"
	"crypto/elliptic"
	"fmt"

	"github.com/MGTheTrain/cryptovault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/cryptovault/internal/pkg/codec"
	"github.com/MGTheTrain/cryptovault/internal/pkg/logger"

	"github.com/samber/lo"
)

// cryptoService implements the CryptoService interface by dispatching to the algorithm processors
type cryptoService struct {
	processors *cryptoalg.Processors
	logger     logger.Logger
}

// NewCryptoService creates a new cryptoService instance
func NewCryptoService(processors *cryptoalg.Processors, logger logger.Logger) (cryptoalg.CryptoService, error) {
	if processors == nil {
		return nil, fmt.Errorf("processors cannot be nil")
	}
	return &cryptoService{
		processors: processors,
		logger:     logger,
	}, nil
}

// GenerateKey produces a symmetric key or an asymmetric key pair.
// AES keys are raw bytes, RSA, ECDSA and Ed25519 pairs are SPKI/PKCS#8 DER,
// and Ed448, ML-DSA-65 and ML-KEM-768 pairs use the scheme's raw encoding. All values are base64.
func (s *cryptoService) GenerateKey(ctx context.Context, keyType cryptoalg.KeyType, options cryptoalg.KeyOptions) (*cryptoalg.KeyMaterial, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch keyType {
	case cryptoalg.KeyTypeAES:
		return s.generateAESKey(options.Size)
	case cryptoalg.KeyTypeRSA:
		return s.generateRSAKeys(options.Size)
	case cryptoalg.KeyTypeECDSA:
		return s.generateECDSAKeys(options.Curve)
	case cryptoalg.KeyTypeEd25519:
		priv, pub, err := s.processors.Ed25519.GenerateKeys()
		if err != nil {
			return nil, err
		}
		pubDER, err := s.processors.Ed25519.MarshalPublicKey(pub)
		if err != nil {
			return nil, err
		}
		privDER, err := s.processors.Ed25519.MarshalPrivateKey(priv)
		if err != nil {
			return nil, err
		}
		return keyPair(pubDER, privDER), nil
	case cryptoalg.KeyTypeEd448:
		return rawKeyPair(s.processors.Ed448.GenerateKeys())
	case cryptoalg.KeyTypeMLDSA65:
		return rawKeyPair(s.processors.MLDSA65.GenerateKeys())
	case cryptoalg.KeyTypeMLKEM768:
		return rawKeyPair(s.processors.MLKEM768.GenerateKeys())
	default:
		return nil, fmt.Errorf("%w: key type %q", cryptoalg.ErrUnsupportedAlgorithm, keyType)
	}
}

func (s *cryptoService) generateAESKey(bits int) (*cryptoalg.KeyMaterial, error) {
	if bits == 0 {
		bits = cryptoalg.DefaultAESKeySize
	}
	if bits != 128 && bits != 192 && bits != 256 {
		return nil, fmt.Errorf("%w: AES key size %d is not one of 128, 192, 256", cryptoalg.ErrInvalidInput, bits)
	}

	key, err := s.processors.AES.GenerateKey(bits / 8)
	if err != nil {
		return nil, err
	}
	return &cryptoalg.KeyMaterial{Key: codec.BytesToBase64(key)}, nil
}

func (s *cryptoService) generateRSAKeys(bits int) (*cryptoalg.KeyMaterial, error) {
	if bits == 0 {
		bits = cryptoalg.DefaultRSAKeySize
	}

	priv, pub, err := s.processors.RSA.GenerateKeys(bits)
	if err != nil {
		return nil, err
	}
	pubDER, err := s.processors.RSA.MarshalPublicKey(pub)
	if err != nil {
		return nil, err
	}
	privDER, err := s.processors.RSA.MarshalPrivateKey(priv)
	if err != nil {
		return nil, err
	}
	return keyPair(pubDER, privDER), nil
}

func (s *cryptoService) generateECDSAKeys(curveName string) (*cryptoalg.KeyMaterial, error) {
	curve, err := cryptoalg.ParseCurve(curveName)
	if err != nil {
		return nil, err
	}

	priv, pub, err := s.processors.ECDSA.GenerateKeys(ellipticCurve(curve))
	if err != nil {
		return nil, err
	}
	pubDER, err := s.processors.ECDSA.MarshalPublicKey(pub)
	if err != nil {
		return nil, err
	}
	privDER, err := s.processors.ECDSA.MarshalPrivateKey(priv)
	if err != nil {
		return nil, err
	}
	return keyPair(pubDER, privDER), nil
}

// Hash digests the UTF-8 bytes of input. An empty format selects Hex.
func (s *cryptoService) Hash(ctx context.Context, algorithm cryptoalg.HashAlgorithm, input string, format cryptoalg.OutputFormat) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	sum, err := s.processors.Digester.Sum(algorithm, codec.TextToBytes(input))
	if err != nil {
		return "", err
	}

	if format == "" {
		format = cryptoalg.FormatHex
	}
	return codec.FormatOutput(sum, format), nil
}

// Algorithms lists the supported algorithm tags
func (s *cryptoService) Algorithms() cryptoalg.Catalogue {
	return cryptoalg.Catalogue{
		Ciphers:       lo.Map(cryptoalg.CipherAlgorithms(), func(a cryptoalg.CipherAlgorithm, _ int) string { return string(a) }),
		Hashes:        lo.Map(cryptoalg.HashAlgorithms(), func(a cryptoalg.HashAlgorithm, _ int) string { return string(a) }),
		Signatures:    lo.Map(cryptoalg.SignatureAlgorithms(), func(a cryptoalg.SignatureAlgorithm, _ int) string { return string(a) }),
		KeyTypes:      lo.Map(cryptoalg.KeyTypes(), func(k cryptoalg.KeyType, _ int) string { return string(k) }),
		OutputFormats: lo.Map(cryptoalg.OutputFormats(), func(f cryptoalg.OutputFormat, _ int) string { return string(f) }),
		Curves:        lo.Map(cryptoalg.Curves(), func(c cryptoalg.Curve, _ int) string { return string(c) }),
	}
}

// decodeKey decodes base64 key material supplied by a caller
func decodeKey(encoded, role string) ([]byte, error) {
	if encoded == "" {
		return nil, fmt.Errorf("%w: %s", cryptoalg.ErrKeyRequired, role)
	}
	key, err := codec.Base64ToBytes(encoded)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", role, err)
	}
	return key, nil
}

func ellipticCurve(c cryptoalg.Curve) elliptic.Curve {
	switch c {
	case cryptoalg.CurveP384:
		return elliptic.P384()
	case cryptoalg.CurveP521:
		return elliptic.P521()
	default:
		return elliptic.P256()
	}
}

func keyPair(publicKey, privateKey []byte) *cryptoalg.KeyMaterial {
	return &cryptoalg.KeyMaterial{
		PublicKey:  codec.BytesToBase64(publicKey),
		PrivateKey: codec.BytesToBase64(privateKey),
	}
}

func rawKeyPair(publicKey, privateKey []byte, err error) (*cryptoalg.KeyMaterial, error) {
	if err != nil {
		return nil, err
	}
	return keyPair(publicKey, privateKey), nil
}
