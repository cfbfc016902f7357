package cryptography

import (
	"fmt"

	"github.com/MGTheTrain/cryptovault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/cryptovault/internal/pkg/logger"

	"github.com/cloudflare/circl/sign"
	"github.com/cloudflare/circl/sign/schemes"
)

// Names of the circl signature schemes served by schemeProcessor
const (
	SchemeEd448   = "Ed448"
	SchemeMLDSA65 = "ML-DSA-65"
)

// schemeProcessor struct that implements the SchemeProcessor interface over a circl sign.Scheme
type schemeProcessor struct {
	scheme sign.Scheme
	logger logger.Logger
}

// NewSchemeProcessor creates a processor for the circl signature scheme called name
func NewSchemeProcessor(name string, logger logger.Logger) (cryptoalg.SchemeProcessor, error) {
	scheme := schemes.ByName(name)
	if scheme == nil {
		return nil, fmt.Errorf("%w: signature scheme %q", cryptoalg.ErrUnsupportedAlgorithm, name)
	}
	return &schemeProcessor{
		scheme: scheme,
		logger: logger,
	}, nil
}

// Name returns the scheme name
func (p *schemeProcessor) Name() string {
	return p.scheme.Name()
}

// GenerateKeys generates a key pair and returns the raw public and private key encodings
func (p *schemeProcessor) GenerateKeys() ([]byte, []byte, error) {
	publicKey, privateKey, err := p.scheme.GenerateKey()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate %s keys: %w", p.scheme.Name(), err)
	}

	pub, err := publicKey.MarshalBinary()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal %s public key: %w", p.scheme.Name(), err)
	}
	priv, err := privateKey.MarshalBinary()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal %s private key: %w", p.scheme.Name(), err)
	}

	p.logger.Info("Generated ", p.scheme.Name(), " key pairs")
	return pub, priv, nil
}

// Sign signs message with the raw encoded private key
func (p *schemeProcessor) Sign(message, privateKey []byte) ([]byte, error) {
	if len(privateKey) != p.scheme.PrivateKeySize() {
		return nil, fmt.Errorf("%w: invalid %s private key length %d", cryptoalg.ErrCryptoFailure, p.scheme.Name(), len(privateKey))
	}

	sk, err := p.scheme.UnmarshalBinaryPrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to parse %s private key: %w", cryptoalg.ErrCryptoFailure, p.scheme.Name(), err)
	}

	signature := p.scheme.Sign(sk, message, nil)
	p.logger.Info(p.scheme.Name(), " signing succeeded")
	return signature, nil
}

// Verify reports whether signature is valid for message. A malformed signature is reported as false.
func (p *schemeProcessor) Verify(message, signature, publicKey []byte) (bool, error) {
	if len(publicKey) != p.scheme.PublicKeySize() {
		return false, fmt.Errorf("%w: invalid %s public key length %d", cryptoalg.ErrCryptoFailure, p.scheme.Name(), len(publicKey))
	}

	pk, err := p.scheme.UnmarshalBinaryPublicKey(publicKey)
	if err != nil {
		return false, fmt.Errorf("%w: unable to parse %s public key: %w", cryptoalg.ErrCryptoFailure, p.scheme.Name(), err)
	}

	valid := len(signature) == p.scheme.SignatureSize() && p.scheme.Verify(pk, message, signature, nil)
	if valid {
		p.logger.Info(p.scheme.Name(), " verification succeeded")
	} else {
		p.logger.Info(p.scheme.Name(), " signature rejected")
	}
	return valid, nil
}
