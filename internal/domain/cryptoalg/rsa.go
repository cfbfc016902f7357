package cryptoalg

import "crypto/rsa"

// RSAProcessor handles RSA asymmetric cryptographic operations.
// RSA supports both encryption/decryption AND digital signatures.
type RSAProcessor interface {
	// GenerateKeys generates an RSA key pair with the specified bit size and public exponent 65537.
	// Supported sizes: 1024, 2048, 3072, 4096 bits.
	GenerateKeys(keySize int) (*rsa.PrivateKey, *rsa.PublicKey, error)

	// Encrypt encrypts plaintext using RSA-OAEP with SHA-256.
	// NOTE: RSA can only encrypt small amounts of data (key size - 2*32 - 2 bytes). There is no chunking.
	Encrypt(plainText []byte, publicKey *rsa.PublicKey) ([]byte, error)

	// Decrypt decrypts RSA-OAEP ciphertext using the private key.
	Decrypt(ciphertext []byte, privateKey *rsa.PrivateKey) ([]byte, error)

	// Sign creates an RSASSA-PKCS1-v1_5 signature over the SHA-256 digest of data.
	Sign(data []byte, privateKey *rsa.PrivateKey) ([]byte, error)

	// Verify reports whether signature is a valid RSASSA-PKCS1-v1_5 SHA-256 signature of data.
	Verify(data []byte, signature []byte, publicKey *rsa.PublicKey) (bool, error)

	// MarshalPublicKey encodes the public key as SPKI (PKIX) DER.
	MarshalPublicKey(publicKey *rsa.PublicKey) ([]byte, error)

	// MarshalPrivateKey encodes the private key as PKCS#8 DER.
	MarshalPrivateKey(privateKey *rsa.PrivateKey) ([]byte, error)

	// ParsePublicKey decodes an SPKI DER public key, falling back to PKCS#1.
	ParsePublicKey(der []byte) (*rsa.PublicKey, error)

	// ParsePrivateKey decodes a PKCS#8 DER private key, falling back to PKCS#1.
	ParsePrivateKey(der []byte) (*rsa.PrivateKey, error)
}
