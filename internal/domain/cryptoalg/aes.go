package cryptoalg

// AESProcessor handles AES symmetric encryption operations.
// NOTE: AES does NOT support signing/verification operations - use RSA, ECDSA or EdDSA for digital signatures.
type AESProcessor interface {
	// GenerateKey generates a random AES key of the specified size.
	// Supported key sizes: 16 (AES-128), 24 (AES-192), 32 (AES-256) bytes.
	GenerateKey(keySize int) ([]byte, error)

	// EncryptGCM encrypts data with AES-GCM under a fresh 12 byte nonce.
	// Returns nonce || ciphertext || tag.
	EncryptGCM(data, key []byte) ([]byte, error)

	// DecryptGCM splits off the nonce, authenticates and decrypts the payload.
	DecryptGCM(payload, key []byte) ([]byte, error)

	// EncryptCBC encrypts data with AES-CBC and PKCS#7 padding under a fresh 16 byte IV.
	// Returns iv || ciphertext.
	EncryptCBC(data, key []byte) ([]byte, error)

	// DecryptCBC splits off the IV, decrypts and removes the PKCS#7 padding.
	DecryptCBC(payload, key []byte) ([]byte, error)
}
