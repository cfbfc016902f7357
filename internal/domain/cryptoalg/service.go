package cryptoalg

import "context"

// CryptoService is the operation surface consumed by the REST API and the CLI.
// Every method is stateless; binary values cross the boundary as base64 or hex strings.
type CryptoService interface {
	// GenerateKey produces a symmetric key or an asymmetric key pair.
	GenerateKey(ctx context.Context, keyType KeyType, options KeyOptions) (*KeyMaterial, error)

	// Encrypt encrypts plaintext and renders the payload in format.
	Encrypt(ctx context.Context, algorithm CipherAlgorithm, plaintext string, source KeySource, format OutputFormat) (*EncryptResult, error)

	// Decrypt decodes ciphertext (base64 then hex unless inputFormat is set) and decrypts it.
	Decrypt(ctx context.Context, algorithm CipherAlgorithm, ciphertext, key string, inputFormat OutputFormat) (string, error)

	// Hash digests input and renders the digest in format.
	Hash(ctx context.Context, algorithm HashAlgorithm, input string, format OutputFormat) (string, error)

	// Sign signs input with the encoded private key and renders the signature in format.
	Sign(ctx context.Context, algorithm SignatureAlgorithm, input, privateKey string, format OutputFormat) (string, error)

	// Verify checks signature over input with the encoded public key.
	Verify(ctx context.Context, algorithm SignatureAlgorithm, input, signature, publicKey string, inputFormat OutputFormat) (bool, error)

	// Algorithms lists the supported algorithm tags.
	Algorithms() Catalogue
}
