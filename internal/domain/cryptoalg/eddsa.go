package cryptoalg

import "crypto/ed25519"

// Ed25519Processor handles Ed25519 signatures with SPKI/PKCS#8 key interchange.
type Ed25519Processor interface {
	// GenerateKeys generates an Ed25519 key pair.
	GenerateKeys() (ed25519.PrivateKey, ed25519.PublicKey, error)

	// Sign signs message and returns the 64 byte signature.
	Sign(message []byte, privateKey ed25519.PrivateKey) ([]byte, error)

	// Verify reports whether signature is valid for message.
	Verify(message, signature []byte, publicKey ed25519.PublicKey) (bool, error)

	// MarshalPublicKey encodes the public key as SPKI (PKIX) DER.
	MarshalPublicKey(publicKey ed25519.PublicKey) ([]byte, error)

	// MarshalPrivateKey encodes the private key as PKCS#8 DER.
	MarshalPrivateKey(privateKey ed25519.PrivateKey) ([]byte, error)

	// ParsePublicKey decodes an SPKI DER public key.
	ParsePublicKey(der []byte) (ed25519.PublicKey, error)

	// ParsePrivateKey decodes a PKCS#8 DER private key.
	ParsePrivateKey(der []byte) (ed25519.PrivateKey, error)
}

// SchemeProcessor handles signature schemes that exchange keys in their raw binary encoding
// (Ed448, ML-DSA-65).
type SchemeProcessor interface {
	// Name returns the scheme name.
	Name() string

	// GenerateKeys generates a key pair and returns the raw public and private key encodings.
	GenerateKeys() (publicKey []byte, privateKey []byte, err error)

	// Sign signs message with the raw encoded private key.
	Sign(message, privateKey []byte) ([]byte, error)

	// Verify reports whether signature is valid for message under the raw encoded public key.
	Verify(message, signature, publicKey []byte) (bool, error)
}
