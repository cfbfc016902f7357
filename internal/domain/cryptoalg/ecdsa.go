package cryptoalg

import (
	"crypto/ecdsa"
	"crypto/elliptic"
)

// ECDSAProcessor handles elliptic curve (ECDSA) cryptographic operations.
// ECDSA is used for digital signatures but NOT for encryption.
type ECDSAProcessor interface {
	// GenerateKeys generates an ECDSA key pair on the specified elliptic curve.
	// Supported curves: P-256, P-384, P-521.
	GenerateKeys(curve elliptic.Curve) (*ecdsa.PrivateKey, *ecdsa.PublicKey, error)

	// Sign signs the SHA-256 digest of message and returns a fixed width r || s signature.
	Sign(message []byte, privateKey *ecdsa.PrivateKey) ([]byte, error)

	// Verify reports whether signature is a valid r || s signature of message.
	Verify(message, signature []byte, publicKey *ecdsa.PublicKey) (bool, error)

	// MarshalPublicKey encodes the public key as SPKI (PKIX) DER.
	MarshalPublicKey(publicKey *ecdsa.PublicKey) ([]byte, error)

	// MarshalPrivateKey encodes the private key as PKCS#8 DER.
	MarshalPrivateKey(privateKey *ecdsa.PrivateKey) ([]byte, error)

	// ParsePublicKey decodes an SPKI DER public key.
	ParsePublicKey(der []byte) (*ecdsa.PublicKey, error)

	// ParsePrivateKey decodes a PKCS#8 DER private key, falling back to SEC 1.
	ParsePrivateKey(der []byte) (*ecdsa.PrivateKey, error)
}
