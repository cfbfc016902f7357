package cryptoalg

// KEMProcessor handles hybrid public key encryption: a KEM shared secret is expanded with HKDF
// into an AES-256-GCM key that seals the message.
type KEMProcessor interface {
	// GenerateKeys generates a key pair and returns the raw public and private key encodings.
	GenerateKeys() (publicKey []byte, privateKey []byte, err error)

	// Encrypt encapsulates to publicKey and returns kemCiphertext || nonce || ciphertext || tag.
	Encrypt(plainText, publicKey []byte) ([]byte, error)

	// Decrypt decapsulates with privateKey and opens the sealed message.
	Decrypt(payload, privateKey []byte) ([]byte, error)
}
