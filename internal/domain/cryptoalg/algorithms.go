package cryptoalg

import (
	"fmt"
	"strings"
)

// CipherAlgorithm selects an encryption primitive and mode
type CipherAlgorithm string

// HashAlgorithm selects a digest function
type HashAlgorithm string

// SignatureAlgorithm selects a signature scheme
type SignatureAlgorithm string

// KeyType selects the kind of key material produced by key generation
type KeyType string

// OutputFormat selects how raw bytes are rendered to text
type OutputFormat string

// Curve names an elliptic curve for ECDSA keys
type Curve string

// Cipher algorithms
const (
	CipherAES256GCM        CipherAlgorithm = "AES-256-GCM"
	CipherAES128CBC        CipherAlgorithm = "AES-128-CBC"
	CipherRSAOAEP          CipherAlgorithm = "RSA-OAEP"
	CipherChaCha20Poly1305 CipherAlgorithm = "ChaCha20-Poly1305"
	CipherBlowfish         CipherAlgorithm = "Blowfish"
	CipherMLKEM768         CipherAlgorithm = "ML-KEM-768"
)

// Hash algorithms
const (
	HashSHA256 HashAlgorithm = "SHA-256"
	HashSHA512 HashAlgorithm = "SHA-512"
	HashSHA1   HashAlgorithm = "SHA-1"
	HashMD5    HashAlgorithm = "MD5"
)

// Signature algorithms
const (
	SignatureRSASHA256 SignatureAlgorithm = "RSA-SHA256"
	SignatureECDSA     SignatureAlgorithm = "ECDSA"
	SignatureEd25519   SignatureAlgorithm = "Ed25519"
	SignatureEd448     SignatureAlgorithm = "Ed448"
	SignatureMLDSA65   SignatureAlgorithm = "ML-DSA-65"
)

// Key types
const (
	KeyTypeAES      KeyType = "AES"
	KeyTypeRSA      KeyType = "RSA"
	KeyTypeECDSA    KeyType = "ECDSA"
	KeyTypeEd25519  KeyType = "Ed25519"
	KeyTypeEd448    KeyType = "Ed448"
	KeyTypeMLDSA65  KeyType = "ML-DSA-65"
	KeyTypeMLKEM768 KeyType = "ML-KEM-768"
)

// Output formats
const (
	FormatBase64 OutputFormat = "Base64"
	FormatHex    OutputFormat = "Hex"
	FormatBinary OutputFormat = "Binary"
)

// Curves
const (
	CurveP256      Curve = "P-256"
	CurveP384      Curve = "P-384"
	CurveP521      Curve = "P-521"
	CurveSecp256k1 Curve = "secp256k1"
)

// Defaults applied when a caller leaves an option empty
const (
	DefaultAESKeySize = 256
	DefaultRSAKeySize = 2048
	DefaultCurve      = CurveP256
)

// CipherFamily groups cipher algorithms by how keys are supplied and how the payload is laid out
type CipherFamily int

const (
	// FamilySymmetric ciphers accept a raw key or mint one, and prefix the payload with a nonce/IV
	FamilySymmetric CipherFamily = iota
	// FamilyAsymmetric ciphers require the recipient's public key and never mint one
	FamilyAsymmetric
)

// CipherProfile is the dispatch table entry for a cipher algorithm
type CipherProfile struct {
	Family CipherFamily
	// KeySize is the size in bytes of a freshly generated key (symmetric only)
	KeySize int
	// NonceSize is the size in bytes of the nonce/IV prefixed to the ciphertext
	NonceSize int
}

var cipherProfiles = map[CipherAlgorithm]CipherProfile{
	CipherAES256GCM:        {Family: FamilySymmetric, KeySize: 32, NonceSize: 12},
	CipherAES128CBC:        {Family: FamilySymmetric, KeySize: 16, NonceSize: 16},
	CipherChaCha20Poly1305: {Family: FamilySymmetric, KeySize: 32, NonceSize: 12},
	CipherBlowfish:         {Family: FamilySymmetric, KeySize: 32, NonceSize: 8},
	CipherRSAOAEP:          {Family: FamilyAsymmetric},
	CipherMLKEM768:         {Family: FamilyAsymmetric, NonceSize: 12},
}

// Profile returns the dispatch table entry for the algorithm
func (a CipherAlgorithm) Profile() (CipherProfile, error) {
	profile, ok := cipherProfiles[a]
	if !ok {
		return CipherProfile{}, fmt.Errorf("%w: encryption algorithm %q", ErrUnsupportedAlgorithm, a)
	}
	return profile, nil
}

// CipherAlgorithms lists every supported cipher algorithm
func CipherAlgorithms() []CipherAlgorithm {
	return []CipherAlgorithm{CipherAES256GCM, CipherAES128CBC, CipherRSAOAEP, CipherChaCha20Poly1305, CipherBlowfish, CipherMLKEM768}
}

// HashAlgorithms lists every supported hash algorithm
func HashAlgorithms() []HashAlgorithm {
	return []HashAlgorithm{HashSHA256, HashSHA512, HashSHA1, HashMD5}
}

// SignatureAlgorithms lists every supported signature algorithm
func SignatureAlgorithms() []SignatureAlgorithm {
	return []SignatureAlgorithm{SignatureRSASHA256, SignatureECDSA, SignatureEd25519, SignatureEd448, SignatureMLDSA65}
}

// KeyTypes lists every supported key type
func KeyTypes() []KeyType {
	return []KeyType{KeyTypeAES, KeyTypeRSA, KeyTypeECDSA, KeyTypeEd25519, KeyTypeEd448, KeyTypeMLDSA65, KeyTypeMLKEM768}
}

// OutputFormats lists every output format
func OutputFormats() []OutputFormat {
	return []OutputFormat{FormatBase64, FormatHex, FormatBinary}
}

// Curves lists every curve usable for ECDSA key generation
func Curves() []Curve {
	return []Curve{CurveP256, CurveP384, CurveP521}
}

// ParseCipherAlgorithm resolves a cipher algorithm tag
func ParseCipherAlgorithm(s string) (CipherAlgorithm, error) {
	a := CipherAlgorithm(s)
	if _, ok := cipherProfiles[a]; !ok {
		return "", fmt.Errorf("%w: encryption algorithm %q", ErrUnsupportedAlgorithm, s)
	}
	return a, nil
}

// ParseHashAlgorithm resolves a hash algorithm tag
func ParseHashAlgorithm(s string) (HashAlgorithm, error) {
	for _, a := range HashAlgorithms() {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: hash algorithm %q", ErrUnsupportedAlgorithm, s)
}

// ParseSignatureAlgorithm resolves a signature algorithm tag
func ParseSignatureAlgorithm(s string) (SignatureAlgorithm, error) {
	for _, a := range SignatureAlgorithms() {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: signature algorithm %q", ErrUnsupportedAlgorithm, s)
}

// ParseKeyType resolves a key type tag
func ParseKeyType(s string) (KeyType, error) {
	for _, t := range KeyTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: key type %q", ErrUnsupportedAlgorithm, s)
}

// ParseOutputFormat resolves an output format case-insensitively; empty selects Base64
func ParseOutputFormat(s string) (OutputFormat, error) {
	if s == "" {
		return FormatBase64, nil
	}
	for _, f := range OutputFormats() {
		if strings.EqualFold(string(f), s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: output format %q", ErrInvalidInput, s)
}

// ParseCurve resolves a curve name; empty selects P-256
func ParseCurve(s string) (Curve, error) {
	if s == "" {
		return DefaultCurve, nil
	}
	for _, c := range Curves() {
		if string(c) == s {
			return c, nil
		}
	}
	if Curve(s) == CurveSecp256k1 {
		return "", fmt.Errorf("%w: curve %s is not available", ErrUnsupportedAlgorithm, s)
	}
	return "", fmt.Errorf("%w: unknown curve %q", ErrInvalidInput, s)
}
