package cryptography

import (
	"crypto/md5"  // #nosec G501 -- MD5 is offered for checksums only
	"crypto/sha1" // #nosec G505 -- SHA-1 is offered for checksums only
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"github.com/MGTheTrain/cryptovault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/cryptovault/internal/pkg/logger"
)

var hashConstructors = map[cryptoalg.HashAlgorithm]func() hash.Hash{
	cryptoalg.HashSHA256: sha256.New,
	cryptoalg.HashSHA512: sha512.New,
	cryptoalg.HashSHA1:   sha1.New,
	cryptoalg.HashMD5:    md5.New,
}

// digester struct that implements the Digester interface
type digester struct {
	logger logger.Logger
}

// NewDigester creates and returns a new instance of digester
func NewDigester(logger logger.Logger) (cryptoalg.Digester, error) {
	return &digester{
		logger: logger,
	}, nil
}

// Sum returns the digest of data under algorithm
func (d *digester) Sum(algorithm cryptoalg.HashAlgorithm, data []byte) ([]byte, error) {
	newHash, ok := hashConstructors[algorithm]
	if !ok {
		return nil, fmt.Errorf("%w: hash algorithm %q", cryptoalg.ErrUnsupportedAlgorithm, algorithm)
	}

	h := newHash()
	h.Write(data)
	sum := h.Sum(nil)

	d.logger.Info("Computed ", algorithm, " digest")
	return sum, nil
}
