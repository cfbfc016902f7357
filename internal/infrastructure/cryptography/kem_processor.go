package cryptography

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/MGTheTrain/cryptovault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/cryptovault/internal/pkg/logger"

	"github.com/cloudflare/circl/kem"
	"github.com/cloudflare/circl/kem/schemes"
	"golang.org/x/crypto/hkdf"
)

// SchemeMLKEM768 is the circl KEM scheme name behind the ML-KEM-768 cipher
const SchemeMLKEM768 = "ML-KEM-768"

// hkdfInfo binds derived keys to this payload layout
const hkdfInfo = "cryptovault ML-KEM-768 AES-256-GCM v1"

// kemProcessor struct that implements the KEMProcessor interface
type kemProcessor struct {
	scheme kem.Scheme
	logger logger.Logger
}

// NewKEMProcessor creates a hybrid encryption processor for the circl KEM scheme called name
func NewKEMProcessor(name string, logger logger.Logger) (cryptoalg.KEMProcessor, error) {
	scheme := schemes.ByName(name)
	if scheme == nil {
		return nil, fmt.Errorf("%w: KEM scheme %q", cryptoalg.ErrUnsupportedAlgorithm, name)
	}
	return &kemProcessor{
		scheme: scheme,
		logger: logger,
	}, nil
}

// GenerateKeys generates a key pair and returns the raw public and private key encodings
func (k *kemProcessor) GenerateKeys() ([]byte, []byte, error) {
	publicKey, privateKey, err := k.scheme.GenerateKeyPair()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate %s keys: %w", k.scheme.Name(), err)
	}

	pub, err := publicKey.MarshalBinary()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal %s public key: %w", k.scheme.Name(), err)
	}
	priv, err := privateKey.MarshalBinary()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal %s private key: %w", k.scheme.Name(), err)
	}

	k.logger.Info("Generated ", k.scheme.Name(), " key pairs")
	return pub, priv, nil
}

// Encrypt encapsulates to publicKey and returns kemCiphertext || nonce || ciphertext || tag
func (k *kemProcessor) Encrypt(plainText, publicKey []byte) ([]byte, error) {
	if len(publicKey) != k.scheme.PublicKeySize() {
		return nil, fmt.Errorf("%w: invalid %s public key length %d", cryptoalg.ErrCryptoFailure, k.scheme.Name(), len(publicKey))
	}

	pk, err := k.scheme.UnmarshalBinaryPublicKey(publicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to parse %s public key: %w", cryptoalg.ErrCryptoFailure, k.scheme.Name(), err)
	}

	kemCiphertext, sharedSecret, err := k.scheme.Encapsulate(pk)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encapsulate: %w", cryptoalg.ErrCryptoFailure, err)
	}

	gcm, err := deriveGCM(sharedSecret, kemCiphertext)
	if err != nil {
		return nil, err
	}

	nonce, err := randomBytes(gcm.NonceSize())
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(kemCiphertext)+len(nonce)+len(plainText)+gcm.Overhead())
	out = append(out, kemCiphertext...)
	out = append(out, nonce...)
	out = gcm.Seal(out, nonce, plainText, nil)

	k.logger.Info(k.scheme.Name(), " encryption succeeded")
	return out, nil
}

// Decrypt decapsulates with privateKey and opens the sealed message
func (k *kemProcessor) Decrypt(payload, privateKey []byte) ([]byte, error) {
	if len(privateKey) != k.scheme.PrivateKeySize() {
		return nil, fmt.Errorf("%w: invalid %s private key length %d", cryptoalg.ErrCryptoFailure, k.scheme.Name(), len(privateKey))
	}

	sk, err := k.scheme.UnmarshalBinaryPrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to parse %s private key: %w", cryptoalg.ErrCryptoFailure, k.scheme.Name(), err)
	}

	ctSize := k.scheme.CiphertextSize()
	if len(payload) < ctSize+gcmNonceSize+16 {
		return nil, fmt.Errorf("%w: ciphertext too short", cryptoalg.ErrCryptoFailure)
	}

	kemCiphertext := payload[:ctSize]
	nonce := payload[ctSize : ctSize+gcmNonceSize]
	sealed := payload[ctSize+gcmNonceSize:]

	sharedSecret, err := k.scheme.Decapsulate(sk, kemCiphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decapsulate: %w", cryptoalg.ErrCryptoFailure, err)
	}

	gcm, err := deriveGCM(sharedSecret, kemCiphertext)
	if err != nil {
		return nil, err
	}

	plainText, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decrypt data: %w", cryptoalg.ErrCryptoFailure, err)
	}

	k.logger.Info(k.scheme.Name(), " decryption succeeded")
	return plainText, nil
}

// deriveGCM expands the KEM shared secret with HKDF-SHA-256, salted with the SHA-256 of the KEM ciphertext,
// into an AES-256-GCM instance
func deriveGCM(sharedSecret, kemCiphertext []byte) (cipher.AEAD, error) {
	salt := sha256.Sum256(kemCiphertext)
	reader := hkdf.New(sha256.New, sharedSecret, salt[:], []byte(hkdfInfo))

	key := make([]byte, 32)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create AES cipher: %w", cryptoalg.ErrCryptoFailure, err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create GCM: %w", cryptoalg.ErrCryptoFailure, err)
	}
	return gcm, nil
}
