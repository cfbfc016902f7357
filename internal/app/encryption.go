package app

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/cryptovault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/cryptovault/internal/pkg/codec"
)

// Encrypt encrypts the UTF-8 bytes of plaintext. Symmetric ciphers use the provided key or mint one and
// return it; asymmetric ciphers require the recipient's public key.
func (s *cryptoService) Encrypt(ctx context.Context, algorithm cryptoalg.CipherAlgorithm, plaintext string, source cryptoalg.KeySource, format cryptoalg.OutputFormat) (*cryptoalg.EncryptResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	profile, err := algorithm.Profile()
	if err != nil {
		return nil, err
	}
	if plaintext == "" {
		return nil, fmt.Errorf("%w: plaintext is required", cryptoalg.ErrInvalidInput)
	}
	if source == nil {
		source = cryptoalg.GenerateNewKey{}
	}

	data := codec.TextToBytes(plaintext)

	if profile.Family == cryptoalg.FamilyAsymmetric {
		provided, ok := source.(cryptoalg.ProvidedKey)
		if !ok {
			return nil, fmt.Errorf("%w: %s encryption requires a public key", cryptoalg.ErrKeyRequired, algorithm)
		}
		publicKey, err := decodeKey(provided.Encoded, "public key")
		if err != nil {
			return nil, err
		}
		payload, err := s.encryptAsymmetric(algorithm, data, publicKey)
		if err != nil {
			return nil, err
		}
		return &cryptoalg.EncryptResult{Data: codec.FormatOutput(payload, format)}, nil
	}

	var (
		key       []byte
		generated bool
	)
	switch src := source.(type) {
	case cryptoalg.ProvidedKey:
		key, err = decodeKey(src.Encoded, "key")
	case cryptoalg.GenerateNewKey:
		key, err = s.generateSymmetricKey(algorithm, profile.KeySize)
		generated = true
	default:
		err = fmt.Errorf("%w: unknown key source %T", cryptoalg.ErrInvalidInput, source)
	}
	if err != nil {
		return nil, err
	}

	payload, err := s.encryptSymmetric(algorithm, data, key)
	if err != nil {
		return nil, err
	}

	result := &cryptoalg.EncryptResult{Data: codec.FormatOutput(payload, format)}
	if generated {
		result.Key = codec.BytesToBase64(key)
	}
	return result, nil
}

// Decrypt decodes ciphertext and decrypts it with key: the raw symmetric key, the PKCS#8 RSA private key or the
// raw ML-KEM-768 private key, all base64. The recovered plaintext must be valid UTF-8.
func (s *cryptoService) Decrypt(ctx context.Context, algorithm cryptoalg.CipherAlgorithm, ciphertext, key string, inputFormat cryptoalg.OutputFormat) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	profile, err := algorithm.Profile()
	if err != nil {
		return "", err
	}
	if ciphertext == "" {
		return "", fmt.Errorf("%w: ciphertext is required", cryptoalg.ErrInvalidInput)
	}

	payload, err := codec.DecodePayload(ciphertext, inputFormat)
	if err != nil {
		return "", fmt.Errorf("invalid encrypted data format: %w", err)
	}

	role := "key"
	if profile.Family == cryptoalg.FamilyAsymmetric {
		role = "private key"
	}
	keyBytes, err := decodeKey(key, role)
	if err != nil {
		return "", err
	}

	var plainText []byte
	if profile.Family == cryptoalg.FamilyAsymmetric {
		plainText, err = s.decryptAsymmetric(algorithm, payload, keyBytes)
	} else {
		plainText, err = s.decryptSymmetric(algorithm, payload, keyBytes)
	}
	if err != nil {
		return "", err
	}

	text, err := codec.BytesToText(plainText)
	if err != nil {
		return "", fmt.Errorf("%w: decrypted data is not valid UTF-8 text", cryptoalg.ErrCryptoFailure)
	}
	return text, nil
}

func (s *cryptoService) generateSymmetricKey(algorithm cryptoalg.CipherAlgorithm, size int) ([]byte, error) {
	switch algorithm {
	case cryptoalg.CipherAES256GCM, cryptoalg.CipherAES128CBC:
		return s.processors.AES.GenerateKey(size)
	case cryptoalg.CipherChaCha20Poly1305:
		return s.processors.ChaCha20.GenerateKey()
	case cryptoalg.CipherBlowfish:
		return s.processors.Blowfish.GenerateKey(size)
	default:
		return nil, fmt.Errorf("%w: %s does not generate keys", cryptoalg.ErrUnsupportedAlgorithm, algorithm)
	}
}

func (s *cryptoService) encryptSymmetric(algorithm cryptoalg.CipherAlgorithm, data, key []byte) ([]byte, error) {
	switch algorithm {
	case cryptoalg.CipherAES256GCM:
		return s.processors.AES.EncryptGCM(data, key)
	case cryptoalg.CipherAES128CBC:
		return s.processors.AES.EncryptCBC(data, key)
	case cryptoalg.CipherChaCha20Poly1305:
		return s.processors.ChaCha20.Encrypt(data, key)
	case cryptoalg.CipherBlowfish:
		return s.processors.Blowfish.Encrypt(data, key)
	default:
		return nil, fmt.Errorf("%w: encryption algorithm %q", cryptoalg.ErrUnsupportedAlgorithm, algorithm)
	}
}

func (s *cryptoService) decryptSymmetric(algorithm cryptoalg.CipherAlgorithm, payload, key []byte) ([]byte, error) {
	switch algorithm {
	case cryptoalg.CipherAES256GCM:
		return s.processors.AES.DecryptGCM(payload, key)
	case cryptoalg.CipherAES128CBC:
		return s.processors.AES.DecryptCBC(payload, key)
	case cryptoalg.CipherChaCha20Poly1305:
		return s.processors.ChaCha20.Decrypt(payload, key)
	case cryptoalg.CipherBlowfish:
		return s.processors.Blowfish.Decrypt(payload, key)
	default:
		return nil, fmt.Errorf("%w: encryption algorithm %q", cryptoalg.ErrUnsupportedAlgorithm, algorithm)
	}
}

func (s *cryptoService) encryptAsymmetric(algorithm cryptoalg.CipherAlgorithm, data, publicKey []byte) ([]byte, error) {
	switch algorithm {
	case cryptoalg.CipherRSAOAEP:
		pub, err := s.processors.RSA.ParsePublicKey(publicKey)
		if err != nil {
			return nil, err
		}
		return s.processors.RSA.Encrypt(data, pub)
	case cryptoalg.CipherMLKEM768:
		return s.processors.MLKEM768.Encrypt(data, publicKey)
	default:
		return nil, fmt.Errorf("%w: encryption algorithm %q", cryptoalg.ErrUnsupportedAlgorithm, algorithm)
	}
}

func (s *cryptoService) decryptAsymmetric(algorithm cryptoalg.CipherAlgorithm, payload, privateKey []byte) ([]byte, error) {
	switch algorithm {
	case cryptoalg.CipherRSAOAEP:
		priv, err := s.processors.RSA.ParsePrivateKey(privateKey)
		if err != nil {
			return nil, err
		}
		return s.processors.RSA.Decrypt(payload, priv)
	case cryptoalg.CipherMLKEM768:
		return s.processors.MLKEM768.Decrypt(payload, privateKey)
	default:
		return nil, fmt.Errorf("%w: encryption algorithm %q", cryptoalg.ErrUnsupportedAlgorithm, algorithm)
	}
}
