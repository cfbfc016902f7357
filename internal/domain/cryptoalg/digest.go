package cryptoalg

// Digester computes one-way digests.
type Digester interface {
	// Sum returns the digest of data under algorithm.
	Sum(algorithm HashAlgorithm, data []byte) ([]byte, error)
}
