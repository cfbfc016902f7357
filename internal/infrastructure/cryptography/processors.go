package cryptography

import (
	"fmt"

	"github.com/MGTheTrain/cryptovault/internal/domain/cryptoalg"
	"github.com/MGTheTrain/cryptovault/internal/pkg/logger"
)

// NewProcessors builds every processor the crypto service dispatches to
func NewProcessors(logger logger.Logger) (*cryptoalg.Processors, error) {
	aesProcessor, err := NewAESProcessor(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES processor: %w", err)
	}
	chachaProcessor, err := NewChaCha20Poly1305Processor(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create ChaCha20-Poly1305 processor: %w", err)
	}
	blowfishProcessor, err := NewBlowfishProcessor(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create Blowfish processor: %w", err)
	}
	rsaProcessor, err := NewRSAProcessor(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}
	ecdsaProcessor, err := NewECDSAProcessor(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create ECDSA processor: %w", err)
	}
	ed25519Processor, err := NewEd25519Processor(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create Ed25519 processor: %w", err)
	}
	ed448Processor, err := NewSchemeProcessor(SchemeEd448, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create Ed448 processor: %w", err)
	}
	mldsaProcessor, err := NewSchemeProcessor(SchemeMLDSA65, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create ML-DSA-65 processor: %w", err)
	}
	kemProcessor, err := NewKEMProcessor(SchemeMLKEM768, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create ML-KEM-768 processor: %w", err)
	}
	digester, err := NewDigester(logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create digester: %w", err)
	}

	return &cryptoalg.Processors{
		AES:      aesProcessor,
		ChaCha20: chachaProcessor,
		Blowfish: blowfishProcessor,
		RSA:      rsaProcessor,
		ECDSA:    ecdsaProcessor,
		Ed25519:  ed25519Processor,
		Ed448:    ed448Processor,
		MLDSA65:  mldsaProcessor,
		MLKEM768: kemProcessor,
		Digester: digester,
	}, nil
}
