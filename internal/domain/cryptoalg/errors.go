package cryptoalg

import "errors"

// Error taxonomy. Callers classify failures with errors.Is.
var (
	// ErrInvalidInput reports a missing or malformed request field
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedAlgorithm reports an algorithm tag outside the supported set
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrMalformedEncoding reports a payload that is neither valid base64 nor valid hex
	ErrMalformedEncoding = errors.New("malformed encoding")

	// ErrKeyRequired reports an operation that needs caller-supplied key material
	ErrKeyRequired = errors.New("key required")

	// ErrCryptoFailure reports a failure of the underlying primitive (authentication, key mismatch, key size)
	ErrCryptoFailure = errors.New("cryptographic failure")
)
