package cryptoalg

// ChaCha20Poly1305Processor handles ChaCha20-Poly1305 authenticated encryption.
type ChaCha20Poly1305Processor interface {
	// GenerateKey generates a random 32 byte key.
	GenerateKey() ([]byte, error)

	// Encrypt seals data under a fresh 12 byte nonce and returns nonce || ciphertext || tag.
	Encrypt(data, key []byte) ([]byte, error)

	// Decrypt opens a nonce-prefixed payload.
	Decrypt(payload, key []byte) ([]byte, error)
}

// BlowfishProcessor handles the legacy Blowfish block cipher in CBC mode with PKCS#7 padding.
// Blowfish is kept for compatibility only; prefer an AEAD for new data.
type BlowfishProcessor interface {
	// GenerateKey generates a random key of keySize bytes (4 to 56).
	GenerateKey(keySize int) ([]byte, error)

	// Encrypt encrypts data under a fresh 8 byte IV and returns iv || ciphertext.
	Encrypt(data, key []byte) ([]byte, error)

	// Decrypt splits off the IV, decrypts and removes the padding.
	Decrypt(payload, key []byte) ([]byte, error)
}
